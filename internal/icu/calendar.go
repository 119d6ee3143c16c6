package icu

import (
	"math"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	zlog "github.com/rs/zerolog/log"
)

// Date is an instant expressed as milliseconds since the Unix epoch.
type Date float64

const (
	// maxMillis bounds the instants a Calendar accepts.
	maxMillis = 183882168921600000
	// maxYear is the largest year magnitude within maxMillis.
	maxYear = 5_828_963
)

// CalendarType selects the calendar system of a Calendar.
type CalendarType int

const (
	// Default uses the calendar named by the locale's calendar keyword.
	Default CalendarType = iota
	// Gregorian is the proleptic Gregorian calendar.
	Gregorian
)

var (
	// now is the clock a freshly opened Calendar starts from.
	now = time.Now

	defaultZoneMu sync.RWMutex
	defaultZone   *time.Location

	liveCalendars = xsync.NewCounter()
)

// SetDefaultZone replaces the zone used when a Calendar is opened with an
// empty zone id and when dates are formatted. A nil loc restores time.Local.
func SetDefaultZone(loc *time.Location) {
	defaultZoneMu.Lock()
	defer defaultZoneMu.Unlock()
	defaultZone = loc
}

// DefaultZone returns the zone used for calendars and formatting.
func DefaultZone() *time.Location {
	defaultZoneMu.RLock()
	defer defaultZoneMu.RUnlock()
	if defaultZone == nil {
		return time.Local
	}
	return defaultZone
}

// LiveCalendars returns the number of calendars opened and not yet closed.
func LiveCalendars() int64 {
	return liveCalendars.Value()
}

// Calendar is a handle to a mutable calendar. It must be closed exactly once.
type Calendar struct {
	zone   *time.Location
	t      time.Time
	closed bool
}

// OpenCalendar opens a calendar positioned at the current instant.
func OpenCalendar(zoneID string, locale string, typ CalendarType) (*Calendar, ErrorCode) {
	zone := DefaultZone()
	if zoneID != "" {
		loc, err := time.LoadLocation(zoneID)
		if err != nil {
			zlog.Debug().Msgf("Unknown zone[%s]: %v", zoneID, err)
			return nil, U_ILLEGAL_ARGUMENT_ERROR
		}
		zone = loc
	}

	switch typ {
	case Gregorian:
	case Default:
		loc, status := ResolveLocale(locale)
		if status.Failure() {
			return nil, status
		}
		if !loc.Gregorian() {
			return nil, U_UNSUPPORTED_ERROR
		}
	default:
		return nil, U_ILLEGAL_ARGUMENT_ERROR
	}

	liveCalendars.Inc()
	return &Calendar{zone: zone, t: now().In(zone)}, U_ZERO_ERROR
}

// SetDate sets the year, zero-based month and day of the calendar, keeping
// its time of day. Out-of-range fields roll over into the neighbouring
// fields.
func (c *Calendar) SetDate(year, month, day int) ErrorCode {
	if c == nil || c.closed {
		return U_ILLEGAL_ARGUMENT_ERROR
	}
	if year > maxYear || year < -maxYear ||
		month >= math.MaxInt32 || month < math.MinInt32 ||
		day > math.MaxInt32 || day < math.MinInt32 {
		return U_ILLEGAL_ARGUMENT_ERROR
	}
	t := time.Date(year, time.Month(month+1), day, c.t.Hour(), c.t.Minute(), c.t.Second(), c.t.Nanosecond(), c.zone)
	if sec := t.Unix(); sec > maxMillis/1000 || sec < -maxMillis/1000 {
		return U_ILLEGAL_ARGUMENT_ERROR
	}
	c.t = t
	return U_ZERO_ERROR
}

// Millis returns the calendar's current instant.
func (c *Calendar) Millis() (Date, ErrorCode) {
	if c == nil || c.closed {
		return 0, U_ILLEGAL_ARGUMENT_ERROR
	}
	return Date(c.t.UnixMilli()), U_ZERO_ERROR
}

// Close releases the calendar. Closing an already closed calendar is a no-op.
func (c *Calendar) Close() {
	if c == nil {
		return
	}
	if c.closed {
		zlog.Warn().Msg("Calendar already closed")
		return
	}
	c.closed = true
	liveCalendars.Dec()
}

// Time converts the instant to a time in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.UnixMilli(int64(d)).In(loc)
}
