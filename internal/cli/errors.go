package cli

import "errors"

// usageError makes a command exit with code 2 instead of 1, matching the
// usual convention for bad arguments vs. real failures.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

func errUsage(msg string) error { return usageError{msg: msg} }

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}
