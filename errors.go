package personread

import "errors"

// Sentinels matched by *Error through errors.Is.
var (
	ErrRead   = errors.New("cannot read file")
	ErrDecode = errors.New("not a valid string")
	ErrFormat = errors.New("invalid person format")
)

// Error is the single error type returned by the pipeline.
// Read and decode failures own the underlying cause; format failures carry none.
type Error struct {
	Kind FailureKind
	Err  error
}

// ReadFailure wraps an I/O failure from the loading stage.
func ReadFailure(cause error) *Error {
	return &Error{Kind: FailRead, Err: cause}
}

// DecodeFailure wraps a text decoding failure.
func DecodeFailure(cause error) *Error {
	return &Error{Kind: FailDecode, Err: cause}
}

// FormatFailure reports a record that does not have the name,surname shape.
func FormatFailure() *Error {
	return &Error{Kind: FailFormat}
}

func (e *Error) Error() string {
	switch e.Kind {
	case FailRead:
		return ErrRead.Error() + ": " + causeText(e.Err)
	case FailDecode:
		return ErrDecode.Error() + ": " + causeText(e.Err)
	default:
		return ErrFormat.Error()
	}
}

// Unwrap exposes the source cause. Format failures have none.
func (e *Error) Unwrap() error {
	if e.Kind == FailFormat {
		return nil
	}
	return e.Err
}

// Is matches the kind sentinel, so errors.Is(err, ErrFormat) works on any wrapped *Error.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrRead:
		return e.Kind == FailRead
	case ErrDecode:
		return e.Kind == FailDecode
	case ErrFormat:
		return e.Kind == FailFormat
	}
	return false
}

// KindOf reports the failure kind carried by err, or FailNone when err is nil
// or does not contain an *Error.
func KindOf(err error) FailureKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return FailNone
}

func causeText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
