package icu

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// argument kinds of a message pattern
const (
	argPlain  = ""
	argDate   = "date"
	argTime   = "time"
	argNumber = "number"
)

type msgPart struct {
	literal string
	arg     int // -1 for literal text
	kind    string
	style   string
}

// FormatMessage formats args with a MessageFormat pattern for locale into
// dest and returns the length of the full result in UTF-16 units.
//
// The supported pattern syntax is literal text with '' and '{…}' quoting,
// {n}, {n, date[, short|medium|long|full]}, {n, time[, style]} and
// {n, number[, integer]}. Preflighting follows StrToUTF8: a dest that is too
// small yields U_BUFFER_OVERFLOW_ERROR along with the capacity needed.
func FormatMessage(locale string, pattern, dest []uint16, args ...any) (int, ErrorCode) {
	loc, status := ResolveLocale(locale)
	if status.Failure() {
		return 0, status
	}
	parts, status := parseMessage(pattern)
	if status.Failure() {
		return 0, status
	}

	var b strings.Builder
	for _, p := range parts {
		if p.arg < 0 {
			b.WriteString(p.literal)
			continue
		}
		if p.arg >= len(args) {
			return 0, U_ILLEGAL_ARGUMENT_ERROR
		}
		s, status := formatArg(loc, p, args[p.arg])
		if status.Failure() {
			return 0, status
		}
		b.WriteString(s)
	}

	out := UString(b.String())
	copy(dest, out)
	return len(out), terminate(dest, len(out))
}

func parseMessage(pattern []uint16) ([]msgPart, ErrorCode) {
	src := []rune(string(utf16.Decode(pattern[:StrLen(pattern)])))

	var parts []msgPart
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, msgPart{literal: lit.String(), arg: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '\'':
			if i+1 < len(src) && src[i+1] == '\'' {
				lit.WriteRune('\'')
				i++
				continue
			}
			if i+1 >= len(src) || (src[i+1] != '{' && src[i+1] != '}') {
				lit.WriteRune('\'')
				continue
			}
			// quoted literal up to the closing apostrophe
			i++
			for ; i < len(src); i++ {
				if src[i] != '\'' {
					lit.WriteRune(src[i])
					continue
				}
				if i+1 < len(src) && src[i+1] == '\'' {
					lit.WriteRune('\'')
					i++
					continue
				}
				break
			}
		case '{':
			end := -1
			for j := i + 1; j < len(src); j++ {
				if src[j] == '{' {
					return nil, U_UNSUPPORTED_ERROR
				}
				if src[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, U_UNMATCHED_BRACES
			}
			p, status := parseArg(string(src[i+1 : end]))
			if status.Failure() {
				return nil, status
			}
			flush()
			parts = append(parts, p)
			i = end
		case '}':
			return nil, U_UNMATCHED_BRACES
		default:
			lit.WriteRune(c)
		}
	}
	flush()
	return parts, U_ZERO_ERROR
}

func parseArg(s string) (msgPart, ErrorCode) {
	fields := strings.SplitN(s, ",", 3)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return msgPart{}, U_PATTERN_SYNTAX_ERROR
	}
	p := msgPart{arg: n}
	if len(fields) > 1 {
		p.kind = strings.ToLower(fields[1])
	}
	if len(fields) > 2 {
		p.style = strings.ToLower(fields[2])
	}

	switch p.kind {
	case argPlain:
		if len(fields) > 1 {
			return msgPart{}, U_PATTERN_SYNTAX_ERROR
		}
	case argDate, argTime:
		switch p.style {
		case "":
			p.style = "medium"
		case "short", "medium", "long", "full":
		default:
			return msgPart{}, U_UNSUPPORTED_ERROR
		}
	case argNumber:
		if p.style != "" && p.style != "integer" {
			return msgPart{}, U_UNSUPPORTED_ERROR
		}
	case "choice", "plural", "select", "selectordinal", "spellout", "ordinal", "duration":
		return msgPart{}, U_UNSUPPORTED_ERROR
	default:
		return msgPart{}, U_PATTERN_SYNTAX_ERROR
	}
	return p, U_ZERO_ERROR
}

func formatArg(loc *Locale, p msgPart, arg any) (string, ErrorCode) {
	switch p.kind {
	case argDate, argTime:
		t, ok := asTime(arg)
		if !ok {
			return "", U_ARGUMENT_TYPE_MISMATCH
		}
		if p.kind == argDate {
			return formatDate(loc, t, p.style)
		}
		return formatTime(loc, t, p.style), U_ZERO_ERROR
	case argNumber:
		f, ok := asFloat(arg)
		if !ok {
			return "", U_ARGUMENT_TYPE_MISMATCH
		}
		if p.style == "integer" {
			return loc.translator.FmtNumber(math.Trunc(f), 0), U_ZERO_ERROR
		}
		return loc.translator.FmtNumber(f, fractionDigits(f)), U_ZERO_ERROR
	}

	if t, ok := asTime(arg); ok {
		date, status := formatDate(loc, t, "short")
		if status.Failure() {
			return "", status
		}
		return date + " " + formatTime(loc, t, "short"), U_ZERO_ERROR
	}
	if f, ok := asFloat(arg); ok {
		return loc.translator.FmtNumber(f, fractionDigits(f)), U_ZERO_ERROR
	}
	return fmt.Sprint(arg), U_ZERO_ERROR
}

// formatDate formats the day of t in the locale's calendar. Calendars with
// no conversion fail with U_UNSUPPORTED_ERROR.
func formatDate(loc *Locale, t time.Time, style string) (string, ErrorCode) {
	if !loc.Gregorian() {
		sys, ok := calendarSystems[loc.Calendar]
		if !ok {
			return "", U_UNSUPPORTED_ERROR
		}
		return formatCalendarDate(loc, sys, t, style)
	}

	tr := loc.translator
	switch style {
	case "short":
		return tr.FmtDateShort(t), U_ZERO_ERROR
	case "long":
		return tr.FmtDateLong(t), U_ZERO_ERROR
	case "full":
		return tr.FmtDateFull(t), U_ZERO_ERROR
	default:
		return tr.FmtDateMedium(t), U_ZERO_ERROR
	}
}

func formatTime(loc *Locale, t time.Time, style string) string {
	tr := loc.translator
	switch style {
	case "short":
		return tr.FmtTimeShort(t)
	case "long":
		return tr.FmtTimeLong(t)
	case "full":
		return tr.FmtTimeFull(t)
	default:
		return tr.FmtTimeMedium(t)
	}
}

func asTime(arg any) (time.Time, bool) {
	switch v := arg.(type) {
	case Date:
		return v.Time(DefaultZone()), true
	case time.Time:
		return v, true
	}
	return time.Time{}, false
}

func asFloat(arg any) (float64, bool) {
	switch v := arg.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// fractionDigits returns the number of fraction digits to show for f, at
// most three.
func fractionDigits(f float64) uint64 {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return uint64(min(len(frac), 3))
}
