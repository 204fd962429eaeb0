package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"ai-task-assistant/internal/task"
)

var (
	controlCharRe = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)
	whitespaceRe  = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)
)

// Validate rejects raw input that should never reach the model.
// The minimum length applies to the trimmed text, the maximum to the raw text.
// Bytes that are not valid UTF-8 count as illegal characters.
func Validate(raw string) error {
	trimmed := strings.TrimSpace(raw)
	trimmedLen := utf8.RuneCountInString(trimmed)

	if trimmedLen == 0 {
		return task.ErrEmptyInput
	}
	if trimmedLen < task.InputMinLength {
		return &task.ValidationError{
			Code:    task.CodeTooShort,
			Message: fmt.Sprintf("input must be at least %d characters (got %d)", task.InputMinLength, trimmedLen),
		}
	}
	if rawLen := utf8.RuneCountInString(raw); rawLen > task.InputMaxLength {
		return &task.ValidationError{
			Code:    task.CodeTooLong,
			Message: fmt.Sprintf("input must be at most %d characters (got %d)", task.InputMaxLength, rawLen),
		}
	}
	if !utf8.ValidString(raw) || controlCharRe.MatchString(raw) {
		return task.ErrIllegalCharacters
	}
	return nil
}

// Preprocess trims the input and collapses whitespace runs. Case is kept.
func Preprocess(raw string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
}
