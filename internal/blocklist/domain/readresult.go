package domain

// ReadResult is the outcome of loading one input file.
// Exactly one of Lines or Err is meaningful: a failed read carries no lines.
type ReadResult struct {
	Path  string   // input path as given on the command line
	Lines []string // raw lines in file order
	Err   error    // non-nil when the file could not be read
}

// OK reports whether the file was read successfully.
func (r ReadResult) OK() bool { return r.Err == nil }
