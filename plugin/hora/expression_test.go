package hora

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clockPtr(h, m int) *ClockTime {
	return &ClockTime{Hour: h, Minute: m}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expression
	}{
		{"one hour", "Quiero un taxi **dentro de una hora**.", DurationDelta{Delta: time.Hour, Trigger: "una hora"}},
		{"hour and a half", "dentro de una hora y media", DurationDelta{Delta: 90 * time.Minute, Trigger: "una hora y media"}},
		{"two hours", "Quiero un taxi dentro de dos horas", DurationDelta{Delta: 2 * time.Hour, Trigger: "dos horas"}},
		{"twenty minutes", "dentro de veinte minutos", DurationDelta{Delta: 20 * time.Minute, Trigger: "veinte minutos"}},
		{"digits", "en 30 minutos por favor", DurationDelta{Delta: 30 * time.Minute, Trigger: "30 minutos"}},
		{"half hour", "en media hora", DurationDelta{Delta: 30 * time.Minute, Trigger: "media hora"}},
		{"generic words", "dentro de cuarenta y cinco minutos", DurationDelta{Delta: 45 * time.Minute, Trigger: "cuarenta y cinco minutos"}},
		{"generic digits", "dentro de 3 horas", DurationDelta{Delta: 3 * time.Hour, Trigger: "3 horas"}},
		{"tonight", "Necesito un taxi para **esta noche**.", DayPartAnchor{Anchor: EstaNoche}},
		{"this morning", "esta mañana", DayPartAnchor{Anchor: EstaManana}},
		{"this afternoon upper case", "ESTA TARDE", DayPartAnchor{Anchor: EstaTarde}},
		{"tomorrow with time", "Quiero reservar un taxi para **mañana a las cinco y media de la tarde**.", DayOffset{Days: 1, At: clockPtr(17, 30)}},
		{"tomorrow bare time", "mañana a las cinco y media", DayOffset{Days: 1, At: clockPtr(5, 30)}},
		{"day after tomorrow", "pasado mañana a las nueve en punto de la mañana", DayOffset{Days: 2, At: clockPtr(9, 0)}},
		{"tomorrow no time", "para mañana", DayOffset{Days: 1}},
		{"tomorrow digit hour with minutes", "mañana a las 5 y media", DayOffset{Days: 1, At: clockPtr(5, 30)}},
		{"tomorrow digit hour with minutes and day part", "mañana a las 5 y media de la tarde", DayOffset{Days: 1, At: clockPtr(17, 30)}},
		{"tomorrow con connector", "mañana a las cinco con diez de la tarde", DayOffset{Days: 1, At: clockPtr(17, 10)}},
		{"hour word that is not a time", "un taxi para las dos personas mañana", DayOffset{Days: 1}},
		{"time only", "a las cinco y media de la tarde", DayOffset{At: clockPtr(17, 30)}},
		{"time only digits", "Necesito un taxi a las 18:45", DayOffset{At: clockPtr(18, 45)}},
		{"weekday with time", "el miércoles a las ocho menos cuarto de la noche", WeekdayTarget{Weekday: 2, At: clockPtr(19, 45)}},
		{"weekday morning is not tomorrow", "el lunes a las diez de la mañana", WeekdayTarget{Weekday: 0, At: clockPtr(10, 0)}},
		{"weekday unaccented", "el sabado", WeekdayTarget{Weekday: 5}},
		{"nothing", "hola, ¿qué tal?", Unrecognized{Text: "hola, ¿qué tal?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExpression(tt.input))
		})
	}
}

func TestNewDayPartAnchor(t *testing.T) {
	assert.Equal(t, DayPartAnchor{Anchor: EstaNoche}, NewDayPartAnchor("esta_noche"))
	assert.Equal(t, DayPartAnchor{Anchor: EstaManana}, NewDayPartAnchor("esta mañana"))
	assert.Equal(t, DayPartAnchor{Anchor: EstaManana}, NewDayPartAnchor("esta_manana"))
	assert.Equal(t, Unrecognized{Text: "esta madrugada"}, NewDayPartAnchor("esta madrugada"))
}

func TestNewWeekdayTarget(t *testing.T) {
	assert.Equal(t, WeekdayTarget{Weekday: 2}, NewWeekdayTarget("miércoles", nil))
	assert.Equal(t, WeekdayTarget{Weekday: 2}, NewWeekdayTarget("Miercoles", nil))
	assert.Equal(t, WeekdayTarget{Weekday: 6, At: clockPtr(8, 0)}, NewWeekdayTarget("domingo", clockPtr(8, 0)))
	assert.Equal(t, Unrecognized{Text: "juevs"}, NewWeekdayTarget("juevs", nil))
}

func TestAnchorKind_Trigger(t *testing.T) {
	assert.Equal(t, "esta noche", EstaNoche.Trigger())
	assert.Equal(t, "", AnchorKind("bogus").Trigger())
}

func TestDurationTriggers(t *testing.T) {
	got := DurationTriggers()
	assert.Equal(t, time.Hour, got["una hora"])
	assert.Equal(t, 2*time.Hour, got["dos horas"])
	assert.Equal(t, 90*time.Minute, got["una hora y media"])
	assert.Equal(t, 20*time.Minute, got["veinte minutos"])
	assert.Equal(t, 30*time.Minute, got["treinta minutos"])
}
