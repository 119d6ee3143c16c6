// Package boundary carries text and failures between host callers and the
// icu library.
package boundary

import (
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/icu"
)

// MessagePrefix starts the message of every BoundaryError.
const MessagePrefix = "ICU Error: "

// BoundaryError is a failure reported by the icu library.
type BoundaryError struct {
	Code icu.ErrorCode
}

// Name returns the symbolic name of the failing status.
func (e *BoundaryError) Name() string { return e.Code.Name() }

func (e *BoundaryError) Error() string { return MessagePrefix + e.Code.Name() }

// Check returns a BoundaryError for a failing status and nil for success
// and warnings.
func Check(code icu.ErrorCode) error {
	if code.Success() {
		return nil
	}
	return errors.WithStack(&BoundaryError{Code: code})
}

// CodeOf returns the icu status carried by err. Errors that did not come
// from the library report U_INTERNAL_PROGRAM_ERROR.
func CodeOf(err error) icu.ErrorCode {
	if err == nil {
		return icu.U_ZERO_ERROR
	}
	var be *BoundaryError
	if errors.As(err, &be) {
		return be.Code
	}
	return icu.U_INTERNAL_PROGRAM_ERROR
}
