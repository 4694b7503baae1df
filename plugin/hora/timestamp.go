package hora

import (
	"fmt"
	"time"
)

// Canonical layouts used in record schemas and extraction.
const (
	TimestampLayout = "2006-01-02 15:04"
	ClockLayout     = "15:04"
)

// Timestamp is a naive calendar timestamp with minute precision. It is used both as the
// context ("now") of a request and as a resolved result. Values produced by this package are
// always normalized.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// ParseTimestamp parses the canonical "YYYY-MM-DD HH:MM" layout.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil || len(s) != len(TimestampLayout) {
		return Timestamp{}, BadFormat(s, TimestampLayout, err)
	}
	return FromTime(t), nil
}

// MustParseTimestamp is ParseTimestamp for literals known to be valid.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromTime truncates t to minute precision in its own location.
func FromTime(t time.Time) Timestamp {
	return Timestamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Time returns the timestamp as a UTC time.Time. Out-of-range fields roll over the way
// time.Date normalizes them, e.g. January 32 becomes February 1.
func (ts Timestamp) Time() time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, 0, 0, time.UTC)
}

// Normalize applies hour, day, month and year rollover.
func (ts Timestamp) Normalize() Timestamp {
	return FromTime(ts.Time())
}

// String renders the canonical "YYYY-MM-DD HH:MM" form.
func (ts Timestamp) String() string {
	n := ts.Normalize()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", n.Year, n.Month, n.Day, n.Hour, n.Minute)
}

// Clock returns the time of day.
func (ts Timestamp) Clock() ClockTime {
	n := ts.Normalize()
	return ClockTime{Hour: n.Hour, Minute: n.Minute}
}

// Weekday returns the day of the week with Monday=0 through Sunday=6.
func (ts Timestamp) Weekday() int {
	return (int(ts.Time().Weekday()) + 6) % 7
}

// Add returns ts shifted by d.
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return FromTime(ts.Time().Add(d))
}

// AddDays returns ts shifted by n calendar days, keeping the time of day.
func (ts Timestamp) AddDays(n int) Timestamp {
	return FromTime(ts.Time().AddDate(0, 0, n))
}

// At returns the same calendar day at clock c.
func (ts Timestamp) At(c ClockTime) Timestamp {
	n := ts.Normalize()
	n.Hour, n.Minute = c.Hour, c.Minute
	return n
}

// Before reports whether ts is strictly earlier than other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.Time().Before(other.Time())
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(b []byte) error {
	parsed, err := ParseTimestamp(string(b))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
