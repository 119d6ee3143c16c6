package bridge

import (
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/datefmt"
	zlog "github.com/rs/zerolog/log"
)

// DateString formats the date (month zero-based) as a long date for locale.
// Library failures are *boundary.BoundaryError.
func DateString(year, month, day int, locale string) (string, error) {
	text := boundary.BorrowText(locale)
	defer text.Release()

	date, err := datefmt.BuildInstant(year, month, day)
	if err != nil {
		return "", err
	}
	return datefmt.DateToString(date, text.String())
}

// GetDateString is the host entry point. On failure it leaves a
// RuntimeException pending on env and returns an empty string.
func GetDateString(env *Env, year, month, day int, locale string) string {
	s, err := DateString(year, month, day, locale)
	if err != nil {
		env.Throw(Translate(err))
		return ""
	}
	return s
}

// Translate maps err to the host exception raised for it.
func Translate(err error) *Exception {
	code := boundary.CodeOf(err)
	if errors.IsAssertionFailure(err) {
		zlog.Error().Msgf("Internal error: %+v", err)
	}
	return &Exception{
		Class:   RuntimeException,
		Message: boundary.MessagePrefix + code.Name(),
	}
}
