package hora

// DayPart is a Spanish descriptor for a part of the day, attached to 12-hour renderings.
type DayPart string

const (
	Madrugada DayPart = "de la madrugada"
	Manana    DayPart = "de la mañana"
	Mediodia  DayPart = "del mediodía"
	Tarde     DayPart = "de la tarde"
	Noche     DayPart = "de la noche"
	AM        DayPart = "a.m."
	PM        DayPart = "p.m."
)

// dayPartBucket covers the inclusive hour range [first,last].
type dayPartBucket struct {
	first, last int
	parts       []DayPart
}

// dayPartBuckets is contiguous, non-overlapping and covers 0-23 exactly once. It is a list,
// not a map, so the match order is fixed.
var dayPartBuckets = []dayPartBucket{
	{0, 5, []DayPart{Madrugada, AM}},
	{6, 11, []DayPart{Manana, AM}},
	{12, 16, []DayPart{Mediodia, Tarde, PM}},
	{17, 23, []DayPart{Tarde, Noche, PM}},
}

// Picker chooses an index in [0,n). *math/rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// ClassifyHour returns the ordered candidate descriptors for hour.
func ClassifyHour(hour int) ([]DayPart, error) {
	if hour < 0 || hour > 23 {
		return nil, OutOfRange("hour", hour, 0, 23)
	}
	return dayPartsOf(hour), nil
}

func dayPartsOf(hour int) []DayPart {
	for _, b := range dayPartBuckets {
		if hour >= b.first && hour <= b.last {
			out := make([]DayPart, len(b.parts))
			copy(out, b.parts)
			return out
		}
	}
	return nil
}

// PickDayPart selects one descriptor for hour. A nil picker always selects the first candidate.
func PickDayPart(hour int, pick Picker) (DayPart, error) {
	parts, err := ClassifyHour(hour)
	if err != nil {
		return "", err
	}
	return parts[pickIndex(pick, len(parts))], nil
}

func pickIndex(pick Picker, n int) int {
	if pick == nil || n <= 1 {
		return 0
	}
	return pick.Intn(n)
}

// To24Hour converts a 12-hour value in [1,12] qualified by d to a 24-hour value. The empty
// descriptor keeps h as spoken.
func (d DayPart) To24Hour(h12 int) int {
	switch d {
	case Madrugada, Manana, AM:
		return h12 % 12
	case Mediodia, Tarde, PM:
		if h12 == 12 {
			return 12
		}
		return h12 + 12
	case Noche:
		// "doce de la noche" is midnight; one to four are small hours.
		switch {
		case h12 == 12:
			return 0
		case h12 < 5:
			return h12
		default:
			return h12 + 12
		}
	}
	return h12 % 24
}

// dayPartByFolded maps the folded spelling of each descriptor back to it.
var dayPartByFolded = func() map[string]DayPart {
	m := make(map[string]DayPart)
	for _, b := range dayPartBuckets {
		for _, p := range b.parts {
			m[fold(string(p))] = p
		}
	}
	return m
}()
