package icu

import (
	"strconv"
	"strings"
	"time"

	"github.com/hablullah/go-hijri"
	"github.com/hablullah/go-juliandays"
	"github.com/hebcal/hdate"
	zlog "github.com/rs/zerolog/log"
)

// unixEpochJD is the Julian day of 1970-01-01T00:00Z.
const unixEpochJD = 2440587.5

// calendarDate is a day in a calendar system other than the Gregorian one.
type calendarDate struct {
	year  int64
	month string
	day   int64
	era   string
}

// calendarSystem converts the day of t to a date in another calendar, with
// month and era names for the locale's language.
type calendarSystem func(loc *Locale, t time.Time) (calendarDate, ErrorCode)

// calendarSystems are the non-Gregorian calendars dates can be formatted in,
// keyed by BCP 47 calendar type.
var calendarSystems = map[string]calendarSystem{
	"buddhist":         buddhistDate,
	"roc":              rocDate,
	"hebrew":           hebrewDate,
	"islamic":          islamicDate,
	"islamic-civil":    islamicDate,
	"islamicc":         islamicDate,
	"islamic-rgsa":     islamicDate,
	"islamic-tbla":     islamicDate,
	"islamic-umalqura": ummAlQuraDate,
}

var (
	islamicMonths = map[string][]string{
		"en": {"Muharram", "Safar", "Rabiʻ I", "Rabiʻ II", "Jumada I", "Jumada II",
			"Rajab", "Shaʻban", "Ramadan", "Shawwal", "Dhuʻl-Qiʻdah", "Dhuʻl-Hijjah"},
		"ar": {"محرم", "صفر", "ربيع الأول", "ربيع الآخر", "جمادى الأولى", "جمادى الآخرة",
			"رجب", "شعبان", "رمضان", "شوال", "ذو القعدة", "ذو الحجة"},
	}
	islamicEras = map[string]string{"en": "AH", "ar": "هـ"}

	// indexed by hdate.HMonth, Nisan first
	hebrewMonths = map[string][]string{
		"en": {"", "Nisan", "Iyar", "Sivan", "Tamuz", "Av", "Elul",
			"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar I", "Adar II"},
		"he": {"", "ניסן", "אייר", "סיוון", "תמוז", "אב", "אלול",
			"תשרי", "חשוון", "כסלו", "טבת", "שבט", "אדר א׳", "אדר ב׳"},
	}
	hebrewAdar = map[string]string{"en": "Adar", "he": "אדר"}
)

func buddhistDate(loc *Locale, t time.Time) (calendarDate, ErrorCode) {
	return calendarDate{
		year:  int64(t.Year()) + 543,
		month: loc.translator.MonthWide(t.Month()),
		day:   int64(t.Day()),
		era:   "BE",
	}, U_ZERO_ERROR
}

func rocDate(loc *Locale, t time.Time) (calendarDate, ErrorCode) {
	d := calendarDate{
		month: loc.translator.MonthWide(t.Month()),
		day:   int64(t.Day()),
	}
	if y := int64(t.Year()); y > 1911 {
		d.year, d.era = y-1911, "Minguo"
	} else {
		d.year, d.era = 1912-y, "B.R.O.C."
	}
	return d, U_ZERO_ERROR
}

func hebrewDate(loc *Locale, t time.Time) (calendarDate, ErrorCode) {
	// Hebrew year 1 starts in the autumn of 3761 BCE.
	if t.Year() < -3759 {
		return calendarDate{}, U_ILLEGAL_ARGUMENT_ERROR
	}
	hd := hdate.FromGregorian(t.Year(), t.Month(), t.Day())
	if hd.Year() < 1 {
		return calendarDate{}, U_ILLEGAL_ARGUMENT_ERROR
	}

	lang := nameLanguage(loc, hebrewMonths)
	month := hebrewMonths[lang][int(hd.Month())]
	if !hebrewLeapYear(hd.Year()) && int(hd.Month()) == 12 {
		month = hebrewAdar[lang]
	}
	d := calendarDate{year: int64(hd.Year()), month: month, day: int64(hd.Day())}
	if lang == "en" {
		d.era = "AM"
	}
	return d, U_ZERO_ERROR
}

func hebrewLeapYear(year int) bool {
	return (7*year+1)%19 < 7
}

func islamicDate(loc *Locale, t time.Time) (calendarDate, ErrorCode) {
	// The converter reads dates before the 1582 cutover as Julian dates, so
	// the day goes in as its Julian day number.
	days := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
	day := juliandays.ToTime(unixEpochJD + float64(days))

	hd, err := hijri.CreateHijriDate(day, hijri.Default)
	if err != nil {
		zlog.Debug().Msgf("No Hijri date for %s: %v", t.Format(time.DateOnly), err)
		return calendarDate{}, U_ILLEGAL_ARGUMENT_ERROR
	}
	return islamicFields(loc, hd.Year, hd.Month, hd.Day), U_ZERO_ERROR
}

func ummAlQuraDate(loc *Locale, t time.Time) (calendarDate, ErrorCode) {
	uq, err := hijri.CreateUmmAlQuraDate(time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC))
	if err != nil {
		// the tables cover 1937 to 2077 only
		return islamicDate(loc, t)
	}
	return islamicFields(loc, uq.Year, uq.Month, uq.Day), U_ZERO_ERROR
}

func islamicFields(loc *Locale, year, month, day int64) calendarDate {
	lang := nameLanguage(loc, islamicMonths)
	return calendarDate{
		year:  year,
		month: islamicMonths[lang][month-1],
		day:   day,
		era:   islamicEras[lang],
	}
}

// nameLanguage returns the locale's language when names has it, else "en".
func nameLanguage(loc *Locale, names map[string][]string) string {
	if lang := loc.Language(); names[lang] != nil {
		return lang
	}
	return "en"
}

// formatCalendarDate formats the day of t in a non-Gregorian calendar. The
// full style adds the weekday; the other styles share one layout.
func formatCalendarDate(loc *Locale, sys calendarSystem, t time.Time, style string) (string, ErrorCode) {
	d, status := sys(loc, t)
	if status.Failure() {
		return "", status
	}

	year := strconv.FormatInt(d.year, 10)
	day := strconv.FormatInt(d.day, 10)
	var s string
	switch loc.Language() {
	case "en":
		s = d.month + " " + day + ", " + year
	case "he":
		s = day + " ב" + d.month + " " + year
	default:
		s = day + " " + d.month + " " + year
	}
	if d.era != "" {
		s += " " + d.era
	}
	if style == "full" {
		s = loc.translator.WeekdayWide(t.Weekday()) + ", " + s
	}
	return strings.TrimSpace(s), U_ZERO_ERROR
}
