// Package cli parses command-line arguments, runs the generator, and maps
// outcomes to process exit codes.
package cli
