package task

import "fmt"

// ValidationCode identifies why raw input was rejected.
type ValidationCode string

const (
	CodeEmptyInput        ValidationCode = "empty_input"
	CodeTooShort          ValidationCode = "too_short"
	CodeTooLong           ValidationCode = "too_long"
	CodeIllegalCharacters ValidationCode = "illegal_characters"
)

// Input limits, counted in characters.
const (
	InputMinLength = 2
	InputMaxLength = 500
	TitleMaxLength = 100
)

// ValidationError is a user-correctable input error. Message is safe to show verbatim.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches on Code so callers can use errors.Is with the sentinels below.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = &ValidationError{Code: CodeEmptyInput, Message: "input text is required"}
	ErrInputTooShort     = &ValidationError{Code: CodeTooShort, Message: fmt.Sprintf("input must be at least %d characters", InputMinLength)}
	ErrInputTooLong      = &ValidationError{Code: CodeTooLong, Message: fmt.Sprintf("input must be at most %d characters", InputMaxLength)}
	ErrIllegalCharacters = &ValidationError{Code: CodeIllegalCharacters, Message: "input contains characters that are not allowed"}
)
