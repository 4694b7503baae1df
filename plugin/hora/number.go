package hora

import "strings"

// CardinalMode selects how zero is rendered.
type CardinalMode int

const (
	// General renders 0 as "cero".
	General CardinalMode = iota
	// ClockHour renders 0 as "doce", for 12-hour wrapped hours where 0 means 12.
	ClockHour
)

var (
	unitWords = [...]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"}
	teenWords = [...]string{"diez", "once", "doce", "trece", "catorce", "quince"}
	// decadeWords is indexed by n/10 for n in [30,59].
	decadeWords = [...]string{3: "treinta", 4: "cuarenta", 5: "cincuenta"}
)

// Lexicalize renders n in [0,59] as Spanish cardinal words.
func Lexicalize(n int, mode CardinalMode) (string, error) {
	if n < 0 || n > 59 {
		return "", OutOfRange("n", n, 0, 59)
	}
	return lexicalize(n, mode), nil
}

// MustLexicalize is Lexicalize for values already known to be in range.
func MustLexicalize(n int, mode CardinalMode) string {
	s, err := Lexicalize(n, mode)
	if err != nil {
		panic(err)
	}
	return s
}

func lexicalize(n int, mode CardinalMode) string {
	switch {
	case n == 0:
		if mode == ClockHour {
			return "doce"
		}
		return "cero"
	case n < 10:
		return unitWords[n]
	case n <= 15:
		return teenWords[n-10]
	case n < 20:
		return "dieci" + unitWords[n%10]
	case n == 20:
		return "veinte"
	case n < 30:
		return "veinti" + unitWords[n%10]
	}
	decade := decadeWords[n/10]
	if n%10 == 0 {
		return decade
	}
	return decade + " y " + unitWords[n%10]
}

// cardinalIndex maps the folded words of every cardinal 0-59 back to its value.
// Accented spellings ("dieciséis", "veintitrés") fold to the same key.
var cardinalIndex = func() map[string]int {
	idx := make(map[string]int, 60)
	for n := 0; n <= 59; n++ {
		idx[fold(lexicalize(n, General))] = n
	}
	return idx
}()

// cardinalAlternation is a regexp alternation of all cardinal words, longest first so that
// "cuarenta y cinco" wins over "cuarenta".
var cardinalAlternation = func() string {
	words := make([]string, 0, len(cardinalIndex))
	for w := range cardinalIndex {
		words = append(words, w)
	}
	sortLongestFirst(words)
	return strings.Join(words, "|")
}()

// ParseCardinal is the inverse of Lexicalize in General mode. It accepts accented and
// unaccented spellings in any case.
func ParseCardinal(words string) (int, bool) {
	n, ok := cardinalIndex[fold(strings.Join(strings.Fields(words), " "))]
	return n, ok
}
