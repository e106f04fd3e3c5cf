package domain

import "strings"

// DefaultNullAddr is the address blocked names resolve to when nothing else is configured.
const DefaultNullAddr = "0.0.0.0"

// Document is a rendered-on-demand blocklist: a fixed header followed by one
// "<null_addr> <domain>" record per entry.
//
// Notes:
// - Entries are kept in input order; duplicates are preserved.
// - Header is written verbatim and is expected to end with a newline.
type Document struct {
	Header   string
	NullAddr string
	Entries  []string
}

// NewDocument builds a Document. An empty nullAddr falls back to DefaultNullAddr.
func NewDocument(header, nullAddr string, entries []string) Document {
	if nullAddr == "" {
		nullAddr = DefaultNullAddr
	}
	return Document{Header: header, NullAddr: nullAddr, Entries: entries}
}

// Body returns the records joined by newlines, without a trailing newline.
func (d Document) Body() string {
	return FormatRecords(d.NullAddr, d.Entries)
}

// String returns the complete file contents: header, a blank line, then the body.
func (d Document) String() string {
	return d.Header + "\n" + d.Body()
}

// FormatRecords prefixes every entry with nullAddr and a single space and joins
// the results with "\n". Zero entries produce the empty string.
func FormatRecords(nullAddr string, entries []string) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(nullAddr)
		b.WriteByte(' ')
		b.WriteString(e)
	}
	return b.String()
}
