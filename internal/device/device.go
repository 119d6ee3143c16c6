// Package device reads platform settings (time zone, locale) the date
// formatter depends on.
package device

import (
	"strings"
	"time"

	zlog "github.com/rs/zerolog/log"
)

// Init sets time.Local to the device's time zone where the platform does
// not do so itself.
func Init() {
	tzName := detectTimezone()
	if tzName == "" {
		return
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		zlog.Warn().Msgf("Unknown device time zone[%s]: %v", tzName, err)
		return
	}
	time.Local = loc
}

// Locale returns the device locale as an ICU locale id (en_US), or an
// empty string when it cannot be detected.
func Locale() string {
	return normalizeLocale(detectLocale())
}

// normalizeLocale turns POSIX (en_US.UTF-8@euro) and BCP 47 (en-US) forms
// into an ICU id.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "-", "_")
}
