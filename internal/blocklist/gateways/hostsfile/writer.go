// Package hostsfile writes rendered blocklists to disk.
package hostsfile

import (
	"bufio"
	"fmt"
	"os"

	logpkg "github.com/haukened/rr-blocklist/internal/blocklist/common/log"
	"github.com/haukened/rr-blocklist/internal/blocklist/domain"
)

// Writer writes blocklist documents to a file path.
type Writer struct {
	logger logpkg.Logger
	perm   os.FileMode
}

// NewWriter returns a Writer that creates files with 0644 permissions.
func NewWriter(logger logpkg.Logger) *Writer {
	return &Writer{logger: logger, perm: 0o644}
}

// Write creates or truncates path and writes doc to it.
// Every failure wraps domain.ErrOutputWrite. No atomicity is attempted: a
// failure part way through may leave a partial file behind.
func (w *Writer) Write(path string, doc domain.Document) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.perm)
	if err != nil {
		w.logger.Debug(map[string]any{"path": path, "error": err.Error()}, "write_open_error")
		return fmt.Errorf("%w %s: %w", domain.ErrOutputWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w %s: %w", domain.ErrOutputWrite, path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	n, err := bw.WriteString(doc.String())
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		w.logger.Debug(map[string]any{"path": path, "error": err.Error()}, "write_error")
		return fmt.Errorf("%w %s: %w", domain.ErrOutputWrite, path, err)
	}

	w.logger.Debug(map[string]any{"path": path, "bytes": n, "entries": len(doc.Entries)}, "write_done")
	return nil
}
