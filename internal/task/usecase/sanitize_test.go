package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-task-assistant/internal/task"
	"ai-task-assistant/internal/task/usecase"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "ok", raw: "buy milk tomorrow"},
		{name: "two characters", raw: "ab"},
		{name: "padded to exactly 500", raw: "  " + strings.Repeat("a", 498)},
		{name: "multibyte counts as characters", raw: strings.Repeat("회", 500)},
		{name: "empty", raw: "", wantErr: task.ErrEmptyInput},
		{name: "whitespace only", raw: "   \t ", wantErr: task.ErrEmptyInput},
		{name: "one character", raw: " a ", wantErr: task.ErrInputTooShort},
		{name: "501 characters", raw: strings.Repeat("a", 501), wantErr: task.ErrInputTooLong},
		{name: "raw length counts padding", raw: " " + strings.Repeat("a", 499) + " ", wantErr: task.ErrInputTooLong},
		{name: "C0 control", raw: "buy\x00milk", wantErr: task.ErrIllegalCharacters},
		{name: "newline is a control character", raw: "buy\nmilk", wantErr: task.ErrIllegalCharacters},
		{name: "C1 control", raw: "buy\u0085milk", wantErr: task.ErrIllegalCharacters},
		{name: "DEL", raw: "buy\x7fmilk", wantErr: task.ErrIllegalCharacters},
		{name: "raw C1 byte is invalid UTF-8", raw: "buy\x85milk", wantErr: task.ErrIllegalCharacters},
		{name: "truncated multibyte sequence", raw: "buy milk \xed\x9a", wantErr: task.ErrIllegalCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.Validate(tt.raw)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)

			var verr *task.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestPreprocess(t *testing.T) {
	assert.Equal(t, "a b", usecase.Preprocess("  a   b  "))
	assert.Equal(t, "Call Mom At 5", usecase.Preprocess("Call   Mom  At 5"))
	assert.Equal(t, "x y", usecase.Preprocess("x　　y"))
}
