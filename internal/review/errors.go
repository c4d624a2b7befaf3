package review

import "fmt"

// InputError reports a request that is missing a required field or
// carries an empty comment list. It is fatal to the request and never
// retried.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// IsInputError checks if an error is an InputError.
func IsInputError(err error) bool {
	_, ok := err.(*InputError)
	return ok
}

// DomainError reports an internal invariant violation, such as the
// encouragement policy being invoked with zero comments. Given input
// validation upstream it should never occur.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "domain invariant violated: " + e.Reason
}

// CollaboratorError wraps a failure from the completion engine. The
// deterministic scaffold is still rendered when this occurs; callers
// see both the report and the error.
type CollaboratorError struct {
	Engine string
	Err    error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("completion engine %s: %v", e.Engine, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
