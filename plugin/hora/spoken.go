package hora

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayPartAlternation = func() string {
		words := make([]string, 0, len(dayPartByFolded))
		for w := range dayPartByFolded {
			words = append(words, w)
		}
		sortLongestFirst(words)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		return strings.Join(words, "|")
	}()

	digitClockPattern = regexp.MustCompile(`(?:^|[^\d:])(\d{1,2}):(\d{2})(?:[^\d:]|$)(?:\s?(` + dayPartAlternation + `))?`)

	anchorPattern = regexp.MustCompile(`\b(` + cardinalAlternation + `) horas y (` + cardinalAlternation + `) minutos\b`)

	// minuteModifier groups: 1 modifier, 2 "y cero N minutos", 3 "y N", 4 "menos N". "con" reads
	// as "y". Alternatives are ordered so the longer modifier wins.
	minuteModifier = `(?: (en punto|(?:y|con) cuarto|(?:y|con) media|menos cuarto` +
		`|(?:y|con) cero (` + cardinalAlternation + `) minutos` +
		`|(?:y|con) (` + cardinalAlternation + `)(?: minutos)?|menos (` + cardinalAlternation + `)(?: minutos)?))?`

	// twelveHourPattern groups: 1 "a " lead, 2 hour, 3-6 minute modifier, 7 day part.
	twelveHourPattern = regexp.MustCompile(`\b(a )?las? (una|` + cardinalAlternation + `)` +
		minuteModifier + `(?: (` + dayPartAlternation + `))?`)

	// bareHourPattern groups: 1 hour, 2-5 minute modifier, 6 day part.
	bareHourPattern = regexp.MustCompile(`\ba las? (\d{1,2})\b` + minuteModifier + `(?: (` + dayPartAlternation + `))?`)
)

// ParseSpoken finds a time of day in a Spanish request. It understands every phrasing that
// Synthesize produces, the anchor form, digit clocks such as "17:30" or "a las 5", and the
// words "medianoche" and "mediodía". Matching is case- and accent-insensitive.
func ParseSpoken(text string) (ClockTime, bool) {
	return parseSpokenFolded(fold(text))
}

func parseSpokenFolded(s string) (ClockTime, bool) {
	if m := digitClockPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if m[3] != "" && h >= 1 && h <= 12 {
			h = dayPartByFolded[m[3]].To24Hour(h)
		}
		if c, err := NewClockTime(h, mm); err == nil {
			return c, true
		}
	}
	if c, ok := parseAnchorFolded(s); ok {
		return c, true
	}
	if c, ok := parseTwelveHour(s); ok {
		return c, true
	}
	if m := bareHourPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		if m[6] != "" && h >= 1 && h <= 12 {
			h = dayPartByFolded[m[6]].To24Hour(h)
		}
		if _, err := NewClockTime(h, 0); err == nil {
			return clockFromMinuteOfDay(h*60 + modifierMinutes(m[2:6])), true
		}
	}
	if strings.Contains(s, "medianoche") {
		return ClockTime{}, true
	}
	if strings.Contains(strings.ReplaceAll(s, "del mediodia", ""), "mediodia") {
		return ClockTime{Hour: 12}, true
	}
	return ClockTime{}, false
}

func parseAnchorFolded(s string) (ClockTime, bool) {
	m := anchorPattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, false
	}
	c, err := NewClockTime(cardinalIndex[m[1]], cardinalIndex[m[2]])
	return c, err == nil
}

// parseTwelveHour reads the first "las <hour>" phrase that is clearly a time: it carries a
// minute modifier or a day part, or follows "a". "para las dos personas" is not a time.
func parseTwelveHour(s string) (ClockTime, bool) {
	for _, m := range twelveHourPattern.FindAllStringSubmatch(s, -1) {
		if m[1] == "" && m[3] == "" && m[7] == "" {
			continue
		}
		h := 1
		if m[2] != "una" {
			h = cardinalIndex[m[2]]
		}
		part := dayPartByFolded[m[7]]

		var hour int
		switch {
		case h >= 1 && h <= 12:
			hour = part.To24Hour(h)
		case h > 12 && h <= 23 && part == "":
			hour = h
		default:
			continue
		}
		return clockFromMinuteOfDay(hour*60 + modifierMinutes(m[3:7])), true
	}
	return ClockTime{}, false
}

// modifierMinutes converts the four minuteModifier groups into a signed minute offset.
func modifierMinutes(g []string) int {
	switch modifier := g[0]; {
	case modifier == "", modifier == "en punto":
		return 0
	case modifier == "menos cuarto":
		return -15
	case strings.HasSuffix(modifier, " cuarto"):
		return 15
	case strings.HasSuffix(modifier, " media"):
		return 30
	case g[1] != "":
		return cardinalIndex[g[1]]
	case g[2] != "":
		return cardinalIndex[g[2]]
	case g[3] != "":
		return -cardinalIndex[g[3]]
	}
	return 0
}
