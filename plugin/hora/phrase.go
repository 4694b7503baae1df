package hora

import "fmt"

// Rule tags the synthesis rule that produced a phrase.
type Rule string

const (
	RuleQuarterPast  Rule = "quarter-past"
	RuleHalfPast     Rule = "half-past"
	RuleQuarterTo    Rule = "quarter-to"
	RuleOnTheHour    Rule = "on-the-hour"
	RuleMinuteOffset Rule = "minute-offset"
	RuleMinusOffset  Rule = "minus-offset"
	RuleNumeric      Rule = "numeric-minutes"
	RuleAnchor24h    Rule = "24h-anchor"
)

// connectors join an hour to the minutes that follow it.
var connectors = []string{"y", "con"}

// PhraseVariant is one natural-language rendering of a clock time.
type PhraseVariant struct {
	Text string `json:"text"`
	Rule Rule   `json:"rule"`
}

// AnchorText renders the unambiguous 24-hour form "<hour> horas y <minute> minutos".
func AnchorText(t ClockTime) string {
	return fmt.Sprintf("%s horas y %s minutos", lexicalize(t.Hour, General), lexicalize(t.Minute, General))
}

// Synthesize renders t once per rule, resolving each day-part placeholder and each "y"/"con"
// connector through pick. The anchor form is always the first variant.
func Synthesize(t ClockTime, pick Picker) ([]PhraseVariant, error) {
	if _, err := NewClockTime(t.Hour, t.Minute); err != nil {
		return nil, err
	}
	return synthesize(t, func(hour int) []DayPart {
		parts := dayPartsOf(hour)
		return parts[pickIndex(pick, len(parts)):][:1]
	}, func() []string {
		return connectors[pickIndex(pick, len(connectors)):][:1]
	}), nil
}

// Variants enumerates every rendering of t, one per admissible day-part descriptor and
// connector, in a deterministic order. The anchor form is the first variant.
func Variants(t ClockTime) ([]PhraseVariant, error) {
	if _, err := NewClockTime(t.Hour, t.Minute); err != nil {
		return nil, err
	}
	return synthesize(t, dayPartsOf, func() []string { return connectors }), nil
}

func synthesize(t ClockTime, partsFor func(hour int) []DayPart, connectorsFor func() []string) []PhraseVariant {
	out := []PhraseVariant{{Text: AnchorText(t), Rule: RuleAnchor24h}}

	emit := func(rule Rule, hour int, body string) {
		for _, p := range partsFor(hour) {
			out = append(out, PhraseVariant{Text: body + " " + string(p), Rule: rule})
		}
	}
	joined := func(rule Rule, head, tail string) {
		for _, c := range connectorsFor() {
			emit(rule, t.Hour, head+" "+c+" "+tail)
		}
	}

	h := "las " + hourWords(t.Hour)
	next := t.nextHour()
	n := "las " + hourWords(next)

	switch m := t.Minute; {
	case m == 0:
		emit(RuleOnTheHour, t.Hour, h+" en punto")
		emit(RuleOnTheHour, t.Hour, h)
	case m == 15:
		joined(RuleQuarterPast, h, "cuarto")
	case m == 30:
		joined(RuleHalfPast, h, "media")
	case m == 45:
		emit(RuleQuarterTo, next, n+" menos cuarto")
	case m < 30:
		words := lexicalize(m, General)
		joined(RuleMinuteOffset, h, words)
		if m < 10 {
			joined(RuleMinuteOffset, h, "cero "+words+" minutos")
		}
	default:
		emit(RuleMinusOffset, next, fmt.Sprintf("%s menos %s", n, lexicalize(60-m, General)))
	}

	// Plain minute words for every time the minute-offset rule does not already spell out.
	if m := t.Minute; m == 0 || m == 15 || m >= 30 {
		joined(RuleNumeric, h, lexicalize(m, General))
	}
	return out
}

// hourWords renders a 24-hour value in 12-hour form, 0 and 12 both reading "doce".
func hourWords(hour int) string {
	return lexicalize(hour%12, ClockHour)
}
