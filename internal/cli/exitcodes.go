package cli

import "errors"

// Exit codes returned by confcheck.
const (
	// ExitSuccess means every candidate file parsed.
	ExitSuccess = 0

	// ExitInvalid means a candidate file failed to parse.
	ExitInvalid = 1

	// ExitEnvError covers usage errors and I/O failures such as a missing directory.
	ExitEnvError = 2
)

// validationError marks a failure whose diagnostic was already printed.
type validationError struct {
	err error
}

func (e *validationError) Error() string { return e.err.Error() }
func (e *validationError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ve *validationError
	if errors.As(err, &ve) {
		return ExitInvalid
	}
	return ExitEnvError
}
