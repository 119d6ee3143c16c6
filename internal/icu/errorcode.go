// Package icu is a small ICU-style facade over CLDR locale data.
//
// It mirrors the calling conventions of the ICU C API: operations report an
// ErrorCode instead of a Go error, handles must be closed by the caller and
// output buffers are filled with a preflight ("measure then fill") protocol.
// Locale data comes from github.com/go-playground/locales.
package icu

import "fmt"

// ErrorCode is an ICU status. Negative values are warnings, zero is success
// and positive values are failures.
type ErrorCode int32

const (
	U_USING_FALLBACK_WARNING        ErrorCode = -128
	U_USING_DEFAULT_WARNING         ErrorCode = -127
	U_STRING_NOT_TERMINATED_WARNING ErrorCode = -124

	U_ZERO_ERROR ErrorCode = 0

	U_ILLEGAL_ARGUMENT_ERROR ErrorCode = 1
	U_MISSING_RESOURCE_ERROR ErrorCode = 2
	U_INTERNAL_PROGRAM_ERROR ErrorCode = 5
	U_INVALID_CHAR_FOUND     ErrorCode = 10
	U_BUFFER_OVERFLOW_ERROR  ErrorCode = 15
	U_UNSUPPORTED_ERROR      ErrorCode = 16

	U_PATTERN_SYNTAX_ERROR   ErrorCode = 0x10107
	U_UNMATCHED_BRACES       ErrorCode = 0x10109
	U_ARGUMENT_TYPE_MISMATCH ErrorCode = 0x1010C
)

var errorNames = map[ErrorCode]string{
	U_USING_FALLBACK_WARNING:        "U_USING_FALLBACK_WARNING",
	U_USING_DEFAULT_WARNING:         "U_USING_DEFAULT_WARNING",
	U_STRING_NOT_TERMINATED_WARNING: "U_STRING_NOT_TERMINATED_WARNING",
	U_ZERO_ERROR:                    "U_ZERO_ERROR",
	U_ILLEGAL_ARGUMENT_ERROR:        "U_ILLEGAL_ARGUMENT_ERROR",
	U_MISSING_RESOURCE_ERROR:        "U_MISSING_RESOURCE_ERROR",
	U_INTERNAL_PROGRAM_ERROR:        "U_INTERNAL_PROGRAM_ERROR",
	U_INVALID_CHAR_FOUND:            "U_INVALID_CHAR_FOUND",
	U_BUFFER_OVERFLOW_ERROR:         "U_BUFFER_OVERFLOW_ERROR",
	U_UNSUPPORTED_ERROR:             "U_UNSUPPORTED_ERROR",
	U_PATTERN_SYNTAX_ERROR:          "U_PATTERN_SYNTAX_ERROR",
	U_UNMATCHED_BRACES:              "U_UNMATCHED_BRACES",
	U_ARGUMENT_TYPE_MISMATCH:        "U_ARGUMENT_TYPE_MISMATCH",
}

// ErrorCodeByName returns the code with the given symbolic name.
func ErrorCodeByName(name string) (ErrorCode, bool) {
	for code, n := range errorNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// Failure reports whether the code is an error (warnings are not).
func (c ErrorCode) Failure() bool { return c > U_ZERO_ERROR }

// Success reports whether the code is zero or a warning.
func (c ErrorCode) Success() bool { return c <= U_ZERO_ERROR }

// Name returns the symbolic name of the code, as u_errorName does.
func (c ErrorCode) Name() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("[BOGUS UErrorCode %d]", int32(c))
}

func (c ErrorCode) String() string { return c.Name() }
