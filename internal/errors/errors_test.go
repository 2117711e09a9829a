package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	wrapped := stderrors.New("underlying cause")
	err := NewParsingError("bad document", wrapped)

	assert.Equal(t, "parsing: bad document: underlying cause", err.Error())
	assert.Equal(t, wrapped, err.Unwrap())
	assert.True(t, stderrors.Is(err, wrapped))
}

func TestAppError_WithoutCause(t *testing.T) {
	err := NewInputError("nothing to read", nil)
	assert.Equal(t, "input: nothing to read", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestAppError_IsMatchesOnType(t *testing.T) {
	a := NewSelectionError("one", nil)
	b := NewSelectionError("two", nil)
	c := NewOutputError("three", nil)

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "typed input error",
			err:  NewInputError("file 'x.json' not found", ErrFileNotFound),
			want: "Input error: file 'x.json' not found",
		},
		{
			name: "typed selection error",
			err:  NewSelectionError("no selection made", nil),
			want: "Selection error: no selection made",
		},
		{
			name: "bare sentinel",
			err:  ErrNoSamples,
			want: "Error: No JSON files found in the samples directory. Please add files and try again.",
		},
		{
			name: "unknown error",
			err:  stderrors.New("boom"),
			want: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserFriendlyError(tt.err))
		})
	}
}
