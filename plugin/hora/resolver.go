package hora

// Resolver resolves expressions against a context timestamp.
//
// DefaultClock is the time of day used by DayOffset and WeekdayTarget when the request names
// no time. When nil, the context's own time of day is kept.
type Resolver struct {
	DefaultClock *ClockTime
}

// Resolve resolves expr against base with the zero Resolver.
func Resolve(base Timestamp, expr Expression) Timestamp {
	return Resolver{}.Resolve(base, expr)
}

// Resolve returns the absolute timestamp that expr denotes relative to base. The result is
// always normalized. Unrecognized expressions, and anchors or weekdays outside the known
// tables, resolve to base itself.
func (r Resolver) Resolve(base Timestamp, expr Expression) Timestamp {
	base = base.Normalize()

	switch e := expr.(type) {
	case DurationDelta:
		return base.Add(e.Delta)
	case DayPartAnchor:
		rule, ok := lookupAnchor(e.Anchor)
		if !ok {
			return base
		}
		at := ClockTime{Hour: rule.hour}
		if base.Hour < rule.threshold {
			return base.At(at)
		}
		return base.AddDays(1).At(at)
	case DayOffset:
		if e.Days == 0 && e.At != nil {
			if today := base.At(*e.At); !today.Before(base) {
				return today
			}
			return base.AddDays(1).At(*e.At)
		}
		return base.AddDays(e.Days).At(r.clockFor(base, e.At))
	case WeekdayTarget:
		if e.Weekday < 0 || e.Weekday > 6 {
			return base
		}
		delta := ((e.Weekday-base.Weekday())%7 + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return base.AddDays(delta).At(r.clockFor(base, e.At))
	}
	return base
}

func (r Resolver) clockFor(base Timestamp, at *ClockTime) ClockTime {
	switch {
	case at != nil:
		return *at
	case r.DefaultClock != nil:
		return *r.DefaultClock
	}
	return base.Clock()
}

// Degraded reports whether resolving expr falls back to the context unchanged.
func Degraded(expr Expression) bool {
	switch e := expr.(type) {
	case nil, Unrecognized:
		return true
	case DayPartAnchor:
		_, ok := lookupAnchor(e.Anchor)
		return !ok
	case WeekdayTarget:
		return e.Weekday < 0 || e.Weekday > 6
	}
	return false
}
