package trivia

import "fmt"

// ValidationError rejects a user action. State is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Invalid builds a ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InvalidFormatError reports a game file that could not be imported.
type InvalidFormatError struct {
	Reason string
	Err    error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return "invalid game file: " + e.Reason + ": " + e.Err.Error()
	}
	return "invalid game file: " + e.Reason
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }
