// Package datefmt builds calendar instants and formats them as long dates.
package datefmt

import (
	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/icu"
	zlog "github.com/rs/zerolog/log"
)

// LongDatePattern is the message used to format an instant.
const LongDatePattern = "{0, date, long}"

// calendarLocale only selects the Gregorian rules of the calendar used to
// build instants; it does not affect formatting.
const calendarLocale = "en_US"

var longDatePattern = icu.UString(LongDatePattern)

// calendarGuard closes its calendar when released. It is only built around
// a successfully opened calendar.
type calendarGuard struct {
	cal *icu.Calendar
}

func (g calendarGuard) release() { g.cal.Close() }

// BuildInstant returns the instant of the given date in the default zone.
// month is zero-based; out-of-range fields roll over.
func BuildInstant(year, month, day int) (icu.Date, error) {
	cal, status := icu.OpenCalendar("", calendarLocale, icu.Gregorian)
	if err := boundary.Check(status); err != nil {
		return 0, err
	}
	guard := calendarGuard{cal: cal}
	defer guard.release()

	if err := boundary.Check(cal.SetDate(year, month, day)); err != nil {
		zlog.Debug().Msgf("Set date %d-%d-%d failed: %v", year, month, day, err)
		return 0, err
	}

	date, status := cal.Millis()
	if err := boundary.Check(status); err != nil {
		return 0, err
	}
	return date, nil
}

// FormatInstant formats date as a long date for locale. The result is a
// zero-terminated UTF-16 buffer.
func FormatInstant(date icu.Date, locale string) ([]uint16, error) {
	n, status := icu.FormatMessage(locale, longDatePattern, nil, date)
	if status != icu.U_BUFFER_OVERFLOW_ERROR {
		if status.Success() {
			// an empty long date; nothing to fill
			return []uint16{0}, nil
		}
		return nil, boundary.Check(status)
	}

	formatted := make([]uint16, n+1)
	if _, status := icu.FormatMessage(locale, longDatePattern, formatted, date); status.Failure() {
		return nil, boundary.Check(status)
	}
	return formatted, nil
}

// DateToString formats date as a long date for locale.
func DateToString(date icu.Date, locale string) (string, error) {
	formatted, err := FormatInstant(date, locale)
	if err != nil {
		return "", err
	}
	return boundary.ProduceText(formatted)
}
