package hora

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHour(t *testing.T) {
	tests := []struct {
		hour int
		want []DayPart
	}{
		{0, []DayPart{Madrugada, AM}},
		{5, []DayPart{Madrugada, AM}},
		{6, []DayPart{Manana, AM}},
		{11, []DayPart{Manana, AM}},
		{12, []DayPart{Mediodia, Tarde, PM}},
		{16, []DayPart{Mediodia, Tarde, PM}},
		{17, []DayPart{Tarde, Noche, PM}},
		{23, []DayPart{Tarde, Noche, PM}},
	}

	for _, tt := range tests {
		got, err := ClassifyHour(tt.hour)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "hour=%d", tt.hour)
	}
}

func TestDayPartBuckets_CoverDayOnce(t *testing.T) {
	covered := make([]int, 24)
	for _, b := range dayPartBuckets {
		for h := b.first; h <= b.last; h++ {
			covered[h]++
		}
	}
	for h, n := range covered {
		assert.Equal(t, 1, n, "hour %d covered %d times", h, n)
	}
}

func TestClassifyHour_OutOfRange(t *testing.T) {
	for _, h := range []int{-1, 24} {
		_, err := ClassifyHour(h)
		assert.True(t, IsCode(err, ErrCodeOutOfRange))
	}
}

func TestClassifyHour_ReturnsCopy(t *testing.T) {
	got, err := ClassifyHour(3)
	require.NoError(t, err)
	got[0] = Noche

	again, err := ClassifyHour(3)
	require.NoError(t, err)
	assert.Equal(t, Madrugada, again[0])
}

func TestPickDayPart(t *testing.T) {
	got, err := PickDayPart(14, nil)
	require.NoError(t, err)
	assert.Equal(t, Mediodia, got)

	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for h := 0; h < 24; h++ {
		pa, err := PickDayPart(h, a)
		require.NoError(t, err)
		pb, err := PickDayPart(h, b)
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
		assert.Contains(t, dayPartsOf(h), pa)
	}
}

func TestDayPart_To24Hour(t *testing.T) {
	tests := []struct {
		part DayPart
		h12  int
		want int
	}{
		{Madrugada, 12, 0},
		{Madrugada, 3, 3},
		{AM, 12, 0},
		{AM, 9, 9},
		{Manana, 7, 7},
		{Mediodia, 12, 12},
		{Mediodia, 2, 14},
		{Tarde, 12, 12},
		{Tarde, 5, 17},
		{PM, 11, 23},
		{Noche, 12, 0},
		{Noche, 2, 2},
		{Noche, 5, 17},
		{Noche, 10, 22},
		{"", 12, 12},
		{"", 4, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.part.To24Hour(tt.h12), "%q %d", tt.part, tt.h12)
	}
}
