package cli

// ExitCodeLimitExceeded is returned by `estimate --max-kg` when the total is
// above the limit.
const ExitCodeLimitExceeded = 2

// ExitError carries a process exit code other than 1.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return e.Reason
}
