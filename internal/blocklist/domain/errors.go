package domain

import "errors"

// Sentinel errors used to classify failures at the CLI boundary.
var (
	// ErrNoInput is returned when no input files were given.
	ErrNoInput = errors.New("no input file(s) given")
	// ErrInputRead marks an input file that could not be opened or read.
	ErrInputRead = errors.New("could not read input file")
	// ErrOutputWrite marks an output file that could not be created or written.
	ErrOutputWrite = errors.New("could not write output file")
	// ErrConfig marks an invalid runtime configuration.
	ErrConfig = errors.New("invalid configuration")
)
