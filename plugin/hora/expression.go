package hora

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ExpressionKind names the variant of an Expression.
type ExpressionKind string

const (
	KindDurationDelta ExpressionKind = "duration-delta"
	KindDayPartAnchor ExpressionKind = "day-part-anchor"
	KindDayOffset     ExpressionKind = "day-offset"
	KindWeekdayTarget ExpressionKind = "weekday-target"
	KindUnrecognized  ExpressionKind = "unrecognized"
)

// Expression is a classified relative request. The set of implementations is closed.
type Expression interface {
	Kind() ExpressionKind
	isExpression()
}

// DurationDelta shifts the context by a fixed duration.
type DurationDelta struct {
	Delta   time.Duration
	Trigger string
}

// DayPartAnchor moves to a fixed hour today, or tomorrow once the threshold has passed.
type DayPartAnchor struct {
	Anchor AnchorKind
}

// DayOffset moves Days calendar days forward, at At or the resolver's default time. With
// Days zero and At set it is the next occurrence of At: today, or tomorrow once At has passed.
type DayOffset struct {
	Days int
	At   *ClockTime
}

// WeekdayTarget moves to the next occurrence of Weekday (Monday=0), never the current day.
type WeekdayTarget struct {
	Weekday int
	At      *ClockTime
}

// Unrecognized is returned when no rule applies. Resolving it yields the context unchanged.
type Unrecognized struct {
	Text string
}

func (DurationDelta) Kind() ExpressionKind { return KindDurationDelta }
func (DayPartAnchor) Kind() ExpressionKind { return KindDayPartAnchor }
func (DayOffset) Kind() ExpressionKind     { return KindDayOffset }
func (WeekdayTarget) Kind() ExpressionKind { return KindWeekdayTarget }
func (Unrecognized) Kind() ExpressionKind  { return KindUnrecognized }

func (DurationDelta) isExpression() {}
func (DayPartAnchor) isExpression() {}
func (DayOffset) isExpression()     {}
func (WeekdayTarget) isExpression() {}
func (Unrecognized) isExpression()  {}

// AnchorKind identifies a day-part anchor.
type AnchorKind string

const (
	EstaManana AnchorKind = "esta_mañana"
	EstaTarde  AnchorKind = "esta_tarde"
	EstaNoche  AnchorKind = "esta_noche"
)

type anchorRule struct {
	kind      AnchorKind
	trigger   string
	hour      int
	threshold int
}

var anchorRules = []anchorRule{
	{EstaManana, "esta mañana", 9, 8},
	{EstaTarde, "esta tarde", 18, 17},
	{EstaNoche, "esta noche", 21, 20},
}

func lookupAnchor(kind AnchorKind) (anchorRule, bool) {
	for _, r := range anchorRules {
		if r.kind == kind {
			return r, true
		}
	}
	return anchorRule{}, false
}

// Trigger returns the request phrase for the anchor, e.g. "esta noche".
func (k AnchorKind) Trigger() string {
	r, _ := lookupAnchor(k)
	return r.trigger
}

// NewDayPartAnchor builds an anchor from its name, either the kind ("esta_noche") or the
// phrase ("esta noche"). Unknown names yield Unrecognized.
func NewDayPartAnchor(name string) Expression {
	f := fold(strings.ReplaceAll(name, "_", " "))
	for _, r := range anchorRules {
		if fold(r.trigger) == f {
			return DayPartAnchor{Anchor: r.kind}
		}
	}
	return Unrecognized{Text: name}
}

// Weekdays lists the Spanish weekday names, Monday first.
var Weekdays = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

// WeekdayIndex returns the Monday=0 index of a weekday name, accents optional.
func WeekdayIndex(name string) (int, bool) {
	f := fold(name)
	for i, w := range Weekdays {
		if fold(w) == f {
			return i, true
		}
	}
	return 0, false
}

// NewWeekdayTarget builds a weekday target from its name. Unknown names yield Unrecognized.
func NewWeekdayTarget(name string, at *ClockTime) Expression {
	i, ok := WeekdayIndex(name)
	if !ok {
		return Unrecognized{Text: name}
	}
	return WeekdayTarget{Weekday: i, At: at}
}

type durationTrigger struct {
	phrase string
	delta  time.Duration
}

// durationTriggers is matched in order, so longer phrases come first.
var durationTriggers = []durationTrigger{
	{"una hora y media", 90 * time.Minute},
	{"hora y media", 90 * time.Minute},
	{"dos horas", 2 * time.Hour},
	{"una hora", time.Hour},
	{"media hora", 30 * time.Minute},
	{"veinte minutos", 20 * time.Minute},
	{"treinta minutos", 30 * time.Minute},
	{"30 minutos", 30 * time.Minute},
}

// DurationTriggers returns the literal duration phrases and their deltas, in match order.
func DurationTriggers() map[string]time.Duration {
	out := make(map[string]time.Duration, len(durationTriggers))
	for _, t := range durationTriggers {
		out[t.phrase] = t.delta
	}
	return out
}

const durationLead = `\b(?:dentro de|en|de aqui a) `

var (
	durationTriggerPatterns = func() []*regexp.Regexp {
		out := make([]*regexp.Regexp, len(durationTriggers))
		for i, t := range durationTriggers {
			out[i] = regexp.MustCompile(durationLead + regexp.QuoteMeta(fold(t.phrase)) + `\b`)
		}
		return out
	}()
	genericDurationPattern = regexp.MustCompile(durationLead + `(\d{1,3}|una|un|` + cardinalAlternation + `) (minutos?|horas?)\b`)
	dayOffsetPattern       = regexp.MustCompile(`\b(pasado )?manana\b`)
	weekdayPattern         = regexp.MustCompile(`\b(lunes|martes|miercoles|jueves|viernes|sabado|domingo)\b`)
	morningQualifier       = strings.NewReplacer("de la manana", " ", "por la manana", " ")
)

// ParseExpression classifies a request. Rules are tried in priority order: duration,
// day-part anchor, day offset, weekday. A time of day on its own is its next occurrence.
// Requests that match nothing are Unrecognized.
func ParseExpression(text string) Expression {
	s := fold(text)

	for i, p := range durationTriggerPatterns {
		if p.MatchString(s) {
			t := durationTriggers[i]
			return DurationDelta{Delta: t.delta, Trigger: t.phrase}
		}
	}
	if m := genericDurationPattern.FindStringSubmatch(s); m != nil {
		if d, ok := genericDuration(m[1], m[2]); ok {
			return DurationDelta{Delta: d, Trigger: m[1] + " " + m[2]}
		}
	}

	for _, r := range anchorRules {
		if strings.Contains(s, fold(r.trigger)) {
			return DayPartAnchor{Anchor: r.kind}
		}
	}

	var at *ClockTime
	if c, ok := parseSpokenFolded(s); ok {
		at = &c
	}

	if m := dayOffsetPattern.FindStringSubmatch(morningQualifier.Replace(s)); m != nil {
		days := 1
		if m[1] != "" {
			days = 2
		}
		return DayOffset{Days: days, At: at}
	}
	if m := weekdayPattern.FindStringSubmatch(s); m != nil {
		return NewWeekdayTarget(m[1], at)
	}
	if at != nil {
		return DayOffset{At: at}
	}
	return Unrecognized{Text: text}
}

func genericDuration(amount, unit string) (time.Duration, bool) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		switch amount {
		case "un", "una":
			n = 1
		default:
			var ok bool
			if n, ok = cardinalIndex[amount]; !ok {
				return 0, false
			}
		}
	}
	if n <= 0 {
		return 0, false
	}
	if strings.HasPrefix(unit, "hora") {
		return time.Duration(n) * time.Hour, true
	}
	return time.Duration(n) * time.Minute, true
}
