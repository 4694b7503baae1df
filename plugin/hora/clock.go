package hora

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewClockTime validates hour and minute. Values are rejected, never clamped.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, OutOfRange("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, OutOfRange("minute", minute, 0, 59)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ParseClock parses the canonical "HH:MM" layout.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil || len(s) != len(ClockLayout) {
		return ClockTime{}, BadFormat(s, ClockLayout, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String renders the clock as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// nextHour returns the following hour of the day, wrapping 23 to 0.
func (c ClockTime) nextHour() int {
	return (c.Hour + 1) % 24
}

// minuteOfDay returns the number of minutes since midnight.
func (c ClockTime) minuteOfDay() int {
	return c.Hour*60 + c.Minute
}

func clockFromMinuteOfDay(m int) ClockTime {
	m = ((m % 1440) + 1440) % 1440
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// AllClockTimes returns the 1440 minutes of a day in order.
func AllClockTimes() []ClockTime {
	out := make([]ClockTime, 0, 1440)
	for m := 0; m < 1440; m++ {
		out = append(out, clockFromMinuteOfDay(m))
	}
	return out
}
