package generator

import "github.com/haukened/rr-blocklist/internal/blocklist/domain"

// LineReader loads one input file. Failures are reported in the result, not as a panic or error return.
type LineReader interface {
	ReadLines(path string) domain.ReadResult
}

// DocumentWriter persists a rendered blocklist.
type DocumentWriter interface {
	Write(path string, doc domain.Document) error
}
