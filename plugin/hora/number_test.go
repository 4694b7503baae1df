package hora

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalize_General(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "cero"},
		{1, "uno"},
		{9, "nueve"},
		{10, "diez"},
		{12, "doce"},
		{15, "quince"},
		{16, "dieciseis"},
		{19, "diecinueve"},
		{20, "veinte"},
		{21, "veintiuno"},
		{23, "veintitres"},
		{29, "veintinueve"},
		{30, "treinta"},
		{31, "treinta y uno"},
		{40, "cuarenta"},
		{45, "cuarenta y cinco"},
		{50, "cincuenta"},
		{59, "cincuenta y nueve"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Lexicalize(tt.n, General)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexicalize_ClockHour(t *testing.T) {
	got, err := Lexicalize(0, ClockHour)
	require.NoError(t, err)
	assert.Equal(t, "doce", got)

	// Only zero differs between modes.
	for n := 1; n <= 59; n++ {
		assert.Equal(t, MustLexicalize(n, General), MustLexicalize(n, ClockHour), "n=%d", n)
	}
}

func TestLexicalize_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 60, 100} {
		_, err := Lexicalize(n, General)
		require.Error(t, err)
		assert.True(t, IsCode(err, ErrCodeOutOfRange), "n=%d", n)
	}
	assert.Panics(t, func() { MustLexicalize(60, General) })
}

func TestParseCardinal(t *testing.T) {
	for n := 0; n <= 59; n++ {
		got, ok := ParseCardinal(MustLexicalize(n, General))
		require.True(t, ok, "n=%d", n)
		assert.Equal(t, n, got)
	}

	tests := []struct {
		input string
		want  int
	}{
		{"dieciséis", 16},
		{"Veintitrés", 23},
		{"  cuarenta   y  dos ", 42},
	}
	for _, tt := range tests {
		got, ok := ParseCardinal(tt.input)
		require.True(t, ok, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, ok := ParseCardinal("sesenta")
	assert.False(t, ok)
}
