package personread

import (
	"fmt"
	"unicode/utf8"
)

// InvalidUTF8Error describes the first invalid byte sequence found while decoding.
type InvalidUTF8Error struct {
	// Index is the byte offset where the invalid sequence starts.
	Index int
	// Len is the length of the invalid sequence, or 0 when the input ended mid-sequence.
	Len int
}

func (e *InvalidUTF8Error) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.Index)
	}
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.Len, e.Index)
}

// DecodeUTF8 interprets b as UTF-8 text. The whole input must be valid.
func DecodeUTF8(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", DecodeFailure(&InvalidUTF8Error{Index: i, Len: invalidLen(b[i:])})
		}
		i += size
	}
	// unreachable: utf8.Valid disagreed with DecodeRune
	return "", DecodeFailure(&InvalidUTF8Error{Index: len(b), Len: 0})
}

// invalidLen returns how many bytes of the sequence starting at b[0] were
// consumed before it turned out invalid, or 0 if b ends before the sequence does.
func invalidLen(b []byte) int {
	lead := b[0]
	var width int
	lo, hi := byte(0x80), byte(0xBF)
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		width = 2
	case lead == 0xE0:
		width, lo = 3, 0xA0
	case lead == 0xED:
		width, hi = 3, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		width = 3
	case lead == 0xF0:
		width, lo = 4, 0x90
	case lead == 0xF4:
		width, hi = 4, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		width = 4
	default:
		return 1
	}

	n := 1
	for k := 1; k < width; k++ {
		if k >= len(b) {
			return 0
		}
		c := b[k]
		if k > 1 {
			lo, hi = 0x80, 0xBF
		}
		if c < lo || c > hi {
			return n
		}
		n++
	}
	return n
}
