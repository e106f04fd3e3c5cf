// Package generator turns input domain lists into a blocklist file.
package generator

import (
	"fmt"

	logpkg "github.com/haukened/rr-blocklist/internal/blocklist/common/log"
	"github.com/haukened/rr-blocklist/internal/blocklist/domain"
	"github.com/haukened/rr-blocklist/internal/blocklist/gateways/hostsfile"
	"github.com/haukened/rr-blocklist/internal/blocklist/parsers"
	"github.com/haukened/rr-blocklist/internal/blocklist/repos/source"
	"github.com/haukened/rr-blocklist/internal/blocklist/services/summary"
)

// Options configures a Generator.
type Options struct {
	Header   string         // banner written before the records
	NullAddr string         // address every entry is mapped to
	Logger   logpkg.Logger  // required
	Reader   LineReader     // defaults to reading from the filesystem
	Writer   DocumentWriter // defaults to hostsfile.Writer
}

// Result describes a completed run.
type Result struct {
	Output       string
	FilesRead    int
	FilesSkipped []string
	Warnings     int
	Summary      summary.Summary
}

// Generator runs the read → strip → render → write pipeline.
type Generator struct {
	header   string
	nullAddr string
	logger   logpkg.Logger
	reader   LineReader
	writer   DocumentWriter
}

// fsReader adapts source.ReadLines to LineReader.
type fsReader struct {
	logger logpkg.Logger
}

func (r fsReader) ReadLines(path string) domain.ReadResult {
	return source.ReadLines(path, r.logger)
}

// New constructs a Generator, filling in filesystem defaults for Reader and Writer.
func New(opts Options) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewNoopLogger()
	}
	reader := opts.Reader
	if reader == nil {
		reader = fsReader{logger: logger}
	}
	writer := opts.Writer
	if writer == nil {
		writer = hostsfile.NewWriter(logger)
	}
	return &Generator{
		header:   opts.Header,
		nullAddr: opts.NullAddr,
		logger:   logger,
		reader:   reader,
		writer:   writer,
	}
}

// Collect reads every input in order and returns the accumulated entries.
// Unreadable inputs are logged at warn level, counted, and skipped.
func (g *Generator) Collect(inputs []string) (entries []string, res Result) {
	for _, in := range inputs {
		rr := g.reader.ReadLines(in)
		if !rr.OK() {
			g.logger.Warn(map[string]any{"error": rr.Err.Error()},
				fmt.Sprintf("Could not read file: %s Please ensure this file exists and you have read permissions", rr.Path))
			res.Warnings++
			res.FilesSkipped = append(res.FilesSkipped, rr.Path)
			continue
		}
		stripped := parsers.StripComments(rr.Lines, g.logger)
		g.logger.Debug(map[string]any{"path": rr.Path, "lines": len(rr.Lines), "entries": len(stripped)}, "file_processed")
		entries = append(entries, stripped...)
		res.FilesRead++
	}
	return entries, res
}

// Generate processes inputs and writes the blocklist to output.
// It returns domain.ErrNoInput when inputs is empty, and an error wrapping
// domain.ErrOutputWrite when the output cannot be written. Unreadable
// inputs do not fail the run; they are reported in Result.
func (g *Generator) Generate(inputs []string, output string) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, domain.ErrNoInput
	}

	entries, res := g.Collect(inputs)
	res.Output = output

	doc := domain.NewDocument(g.header, g.nullAddr, entries)
	if err := g.writer.Write(output, doc); err != nil {
		return res, err
	}

	res.Summary = summary.Summarize(entries)
	return res, nil
}
