package cli

// Process exit codes.
const (
	ExitOK          = 0
	ExitOutputWrite = 1
	ExitUsage       = 2
	ExitConfig      = 3
	ExitVersion     = 4
)

// ExitError carries a specific exit code up to main.
// An empty Message means the user has already been told everything.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error { return e.Err }
