package hora

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(variants []PhraseVariant) []string {
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = v.Text
	}
	return out
}

func TestSynthesize_AnchorExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, c := range AllClockTimes() {
		for _, gen := range []func(ClockTime) ([]PhraseVariant, error){
			Variants,
			func(c ClockTime) ([]PhraseVariant, error) { return Synthesize(c, rng) },
		} {
			got, err := gen(c)
			require.NoError(t, err)
			require.Greater(t, len(got), 1, "%s has no minute-specific variant", c)

			anchor := AnchorText(c)
			n := 0
			for _, v := range got {
				if v.Text == anchor {
					n++
					assert.Equal(t, RuleAnchor24h, v.Rule)
				}
			}
			assert.Equal(t, 1, n, "%s", c)
		}
	}
}

func TestSynthesize_Renderings(t *testing.T) {
	tests := []struct {
		name  string
		clock ClockTime
		want  []string
	}{
		{"on the hour", ClockTime{10, 0}, []string{
			"diez horas y cero minutos",
			"las diez en punto de la mañana",
			"las diez en punto a.m.",
			"las diez de la mañana",
		}},
		{"midnight", ClockTime{0, 0}, []string{
			"cero horas y cero minutos",
			"las doce en punto de la madrugada",
		}},
		{"quarter past", ClockTime{14, 15}, []string{"las dos y cuarto del mediodía", "las dos y cuarto p.m."}},
		{"half past", ClockTime{7, 30}, []string{"las siete y media a.m."}},
		{"quarter to wraps the day", ClockTime{23, 45}, []string{
			"veintitres horas y cuarenta y cinco minutos",
			"las doce menos cuarto de la madrugada",
		}},
		{"quarter to crosses a day part", ClockTime{11, 45}, []string{"las doce menos cuarto del mediodía"}},
		{"minute offset", ClockTime{20, 29}, []string{"las ocho y veintinueve de la noche"}},
		{"single digit minute", ClockTime{3, 5}, []string{
			"las tres y cinco de la madrugada",
			"las tres y cero cinco minutos de la madrugada",
		}},
		{"minus offset", ClockTime{16, 50}, []string{"las cinco menos diez de la tarde", "las cinco menos diez de la noche"}},
		{"minus offset at one", ClockTime{0, 35}, []string{"las uno menos veinticinco de la madrugada"}},
		{"con connector", ClockTime{17, 10}, []string{"las cinco y diez de la tarde", "las cinco con diez de la tarde"}},
		{"con cuarto", ClockTime{3, 15}, []string{"las tres con cuarto a.m."}},
		{"con media", ClockTime{7, 30}, []string{"las siete con media de la mañana"}},
		{"numeric minutes past half", ClockTime{21, 45}, []string{
			"las nueve y cuarenta y cinco de la noche",
			"las nueve con cuarenta y cinco p.m.",
		}},
		{"numeric zero minutes", ClockTime{10, 0}, []string{"las diez y cero de la mañana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Variants(tt.clock)
			require.NoError(t, err)
			all := texts(got)
			for _, w := range tt.want {
				assert.Contains(t, all, w)
			}
		})
	}
}

func TestSynthesize_Rules(t *testing.T) {
	tests := []struct {
		clock ClockTime
		rule  Rule
	}{
		{ClockTime{9, 0}, RuleOnTheHour},
		{ClockTime{9, 15}, RuleQuarterPast},
		{ClockTime{9, 30}, RuleHalfPast},
		{ClockTime{9, 45}, RuleQuarterTo},
		{ClockTime{9, 1}, RuleMinuteOffset},
		{ClockTime{9, 29}, RuleMinuteOffset},
		{ClockTime{9, 31}, RuleMinusOffset},
		{ClockTime{9, 59}, RuleMinusOffset},
	}

	for _, tt := range tests {
		got, err := Variants(tt.clock)
		require.NoError(t, err)
		numeric := 0
		for _, v := range got[1:] {
			if v.Rule == RuleNumeric {
				numeric++
				continue
			}
			assert.Equal(t, tt.rule, v.Rule, "%s: %q", tt.clock, v.Text)
		}
		if tt.rule == RuleMinuteOffset {
			assert.Zero(t, numeric, "%s", tt.clock)
		} else {
			assert.NotZero(t, numeric, "%s", tt.clock)
		}
	}
}

func TestSynthesize_Reproducible(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for _, c := range AllClockTimes() {
		va, err := Synthesize(c, a)
		require.NoError(t, err)
		vb, err := Synthesize(c, b)
		require.NoError(t, err)
		require.Equal(t, va, vb)
	}
}

func TestSynthesize_NilPickerIsFirstCandidate(t *testing.T) {
	got, err := Synthesize(ClockTime{18, 30}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"dieciocho horas y treinta minutos",
		"las seis y media de la tarde",
		"las seis y treinta de la tarde",
	}, texts(got))
}

func TestSynthesize_InvalidClock(t *testing.T) {
	_, err := Synthesize(ClockTime{Hour: 24}, nil)
	assert.True(t, IsCode(err, ErrCodeOutOfRange))
	_, err = Variants(ClockTime{Minute: 60})
	assert.True(t, IsCode(err, ErrCodeOutOfRange))
}

func TestVariants_Distinct(t *testing.T) {
	for _, c := range AllClockTimes() {
		got, err := Variants(c)
		require.NoError(t, err)
		seen := make(map[string]bool, len(got))
		for _, v := range got {
			require.False(t, seen[v.Text], "%s: duplicate %q", c, v.Text)
			seen[v.Text] = true
		}
	}
}

func TestVariants_ParseBack(t *testing.T) {
	for _, c := range AllClockTimes() {
		got, err := Variants(c)
		require.NoError(t, err)
		for _, v := range got {
			parsed, ok := ParseSpoken(v.Text)
			require.True(t, ok, "%q", v.Text)
			require.Equal(t, c, parsed, "%q", v.Text)
		}
	}
}
