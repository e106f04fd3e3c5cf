// Package source loads blocklist input files into memory.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	logpkg "github.com/haukened/rr-blocklist/internal/blocklist/common/log"
	"github.com/haukened/rr-blocklist/internal/blocklist/domain"
)

// ReadLines reads the whole file at path and splits it on '\n'.
// The file is closed before returning whether or not the read succeeded.
// Failures are reported through ReadResult.Err, wrapping domain.ErrInputRead.
func ReadLines(path string, logger logpkg.Logger) domain.ReadResult {
	logger.Debug(map[string]any{"path": path}, "read_start")

	f, err := os.Open(path)
	if err != nil {
		logger.Debug(map[string]any{"path": path, "error": err.Error()}, "read_open_error")
		return domain.ReadResult{Path: path, Err: fmt.Errorf("%w %s: %w", domain.ErrInputRead, path, err)}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Debug(map[string]any{"path": path, "error": cerr.Error()}, "read_close_error")
		}
	}()

	lines, err := SplitLines(f)
	if err != nil {
		logger.Debug(map[string]any{"path": path, "error": err.Error()}, "read_error")
		return domain.ReadResult{Path: path, Err: fmt.Errorf("%w %s: %w", domain.ErrInputRead, path, err)}
	}

	logger.Debug(map[string]any{"path": path, "lines": len(lines)}, "read_done")
	return domain.ReadResult{Path: path, Lines: lines}
}

// SplitLines drains r and returns its contents split on '\n'.
// A leading UTF-8 byte order mark is removed. A trailing newline produces a
// final empty line, which the comment stripper discards.
func SplitLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")
	return strings.Split(text, "\n"), nil
}
