package icu

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UString returns s as UTF-16 code units.
func UString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// StrLen returns the number of code units before the first zero unit.
func StrLen(s []uint16) int {
	for i, u := range s {
		if u == 0 {
			return i
		}
	}
	return len(s)
}

// StrToUTF8 converts src, up to its first zero unit, to UTF-8 in dest and
// returns the length of the full result in bytes.
//
// If dest is too small the result is U_BUFFER_OVERFLOW_ERROR and the
// returned length is the capacity needed; calling with a nil dest is the
// usual way to measure. If the result fills dest exactly it is not
// terminated and the status is U_STRING_NOT_TERMINATED_WARNING.
func StrToUTF8(dest []byte, src []uint16) (int, ErrorCode) {
	src = src[:StrLen(src)]

	n := 0
	for i := 0; i < len(src); i++ {
		r := rune(src[i])
		switch {
		case utf16.IsSurrogate(r):
			if r >= 0xDC00 || i+1 >= len(src) {
				return 0, U_INVALID_CHAR_FOUND
			}
			r = utf16.DecodeRune(r, rune(src[i+1]))
			if r == utf8.RuneError {
				return 0, U_INVALID_CHAR_FOUND
			}
			i++
		}
		size := utf8.RuneLen(r)
		if n+size <= len(dest) {
			utf8.EncodeRune(dest[n:], r)
		}
		n += size
	}
	return n, terminate(dest, n)
}

// terminate writes the zero terminator after n units when there is room and
// reports the preflight status for a result of length n.
func terminate[T byte | uint16](dest []T, n int) ErrorCode {
	switch {
	case n > len(dest):
		return U_BUFFER_OVERFLOW_ERROR
	case n == len(dest):
		return U_STRING_NOT_TERMINATED_WARNING
	default:
		dest[n] = 0
		return U_ZERO_ERROR
	}
}
