package hora

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// Shape is the canonical form an extraction matched.
type Shape string

const (
	ShapeDateTime Shape = "datetime"
	ShapeClock    Shape = "clock"
)

var (
	dateTimeShape = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}`)
	clockShape    = regexp.MustCompile(`(\d{2}):(\d{2})`)
)

// Extraction is a timestamp recovered from free text. Clock is always set; Timestamp is set
// only for ShapeDateTime.
type Extraction struct {
	Shape     Shape
	Clock     ClockTime
	Timestamp *Timestamp
}

// String renders the canonical form of the match: "YYYY-MM-DD HH:MM" or "HH:MM".
func (e Extraction) String() string {
	if e.Shape == ShapeDateTime && e.Timestamp != nil {
		return e.Timestamp.String()
	}
	return e.Clock.String()
}

// MarshalJSON encodes the match as {"shape": ..., "value": ...} with the canonical value.
func (e Extraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Shape Shape  `json:"shape"`
		Value string `json:"value"`
	}{e.Shape, e.String()})
}

// Extract scans text for the first "YYYY-MM-DD HH:MM", then the first bare "HH:MM", and
// finally the spoken anchor form "<h> horas y <m> minutos". Candidates with impossible field
// values are skipped. When nothing matches, the returned error has ErrCodeNotFound and carries
// text; the Extraction is never a silent zero value.
func Extract(text string) (Extraction, error) {
	for _, m := range dateTimeShape.FindAllStringIndex(text, -1) {
		if digitNeighbour(text, m[0], m[1]) {
			continue
		}
		if ts, err := ParseTimestamp(text[m[0]:m[1]]); err == nil {
			return Extraction{Shape: ShapeDateTime, Clock: ts.Clock(), Timestamp: &ts}, nil
		}
	}
	for _, m := range clockShape.FindAllStringSubmatchIndex(text, -1) {
		// Reject runs of digits such as "123:45" or "12:345".
		if digitNeighbour(text, m[0], m[1]) {
			continue
		}
		h, _ := strconv.Atoi(text[m[2]:m[3]])
		mm, _ := strconv.Atoi(text[m[4]:m[5]])
		if c, err := NewClockTime(h, mm); err == nil {
			return Extraction{Shape: ShapeClock, Clock: c}, nil
		}
	}
	if c, ok := parseAnchorFolded(fold(text)); ok {
		return Extraction{Shape: ShapeClock, Clock: c}, nil
	}
	return Extraction{}, NotFound(text)
}

func digitNeighbour(text string, start, end int) bool {
	return (start > 0 && isDigit(text[start-1])) || (end < len(text) && isDigit(text[end]))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
