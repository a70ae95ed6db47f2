package personread

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Messages(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"read", ReadFailure(cause), "cannot read file: boom"},
		{"decode", DecodeFailure(cause), "not a valid string: boom"},
		{"format", FormatFailure(), "invalid person format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestError_UnwrapExposesCause(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "person.txt", Err: fs.ErrNotExist}

	err := error(ReadFailure(pathErr))
	var got *fs.PathError
	require.True(t, errors.As(err, &got))
	assert.Same(t, pathErr, got)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	decodeCause := &InvalidUTF8Error{Index: 3, Len: 1}
	assert.Same(t, decodeCause, errors.Unwrap(DecodeFailure(decodeCause)))

	assert.Nil(t, errors.Unwrap(FormatFailure()))
}

func TestError_IsMatchesOnlyItsKind(t *testing.T) {
	read := ReadFailure(errors.New("x"))
	decode := DecodeFailure(errors.New("x"))
	format := FormatFailure()

	assert.ErrorIs(t, read, ErrRead)
	assert.NotErrorIs(t, read, ErrDecode)
	assert.NotErrorIs(t, read, ErrFormat)

	assert.ErrorIs(t, decode, ErrDecode)
	assert.NotErrorIs(t, decode, ErrRead)

	assert.ErrorIs(t, format, ErrFormat)
	assert.NotErrorIs(t, format, ErrRead)
	assert.NotErrorIs(t, format, ErrDecode)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, FailNone, KindOf(nil))
	assert.Equal(t, FailNone, KindOf(errors.New("foreign")))
	assert.Equal(t, FailRead, KindOf(ReadFailure(errors.New("x"))))
	assert.Equal(t, FailDecode, KindOf(DecodeFailure(errors.New("x"))))
	assert.Equal(t, FailFormat, KindOf(FormatFailure()))

	wrapped := errors.Join(errors.New("context"), FormatFailure())
	assert.Equal(t, FailFormat, KindOf(wrapped))
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "none", FailNone.String())
	assert.Equal(t, "read", FailRead.String())
	assert.Equal(t, "decode", FailDecode.String())
	assert.Equal(t, "format", FailFormat.String())
	assert.Equal(t, "unknown", FailureKind(42).String())
}
