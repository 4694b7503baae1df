package hora

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/tiempo/internal/observability"
)

func TestService_Predict(t *testing.T) {
	metrics := observability.NewMetrics()
	svc := NewService(WithMetrics(metrics))
	ctx := context.Background()

	t.Run("Duration", func(t *testing.T) {
		p, err := svc.Predict(ctx, "Quiero un taxi dentro de una hora", "2025-01-01 10:00")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01 11:00", p.SalidaAbsoluta.String())
		assert.Equal(t, KindDurationDelta, p.Kind)
		assert.False(t, p.Degraded)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		p, err := svc.Predict(ctx, "hola", "2025-01-01 10:00")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01 10:00", p.SalidaAbsoluta.String())
		assert.Equal(t, KindUnrecognized, p.Kind)
		assert.True(t, p.Degraded)
	})

	t.Run("BadContext", func(t *testing.T) {
		_, err := svc.Predict(ctx, "esta noche", "01/01/2025 10:00")
		require.Error(t, err)
		assert.True(t, IsCode(err, ErrCodeBadFormat))
		assert.Contains(t, err.Error(), "01/01/2025 10:00")
	})

	snap := metrics.Snapshot()
	assert.Equal(t, int64(2), snap.Operations["predict"].Count)
	assert.Equal(t, int64(1), snap.Operations["predict"].ErrorCount)
	assert.Equal(t, int64(1), snap.Degraded)
	assert.Equal(t, int64(1), snap.Kinds[string(KindDurationDelta)])
}

func TestService_DefaultClock(t *testing.T) {
	svc := NewService(WithDefaultClock(ClockTime{Hour: 8}), WithMetrics(observability.NewMetrics()))
	p, err := svc.Predict(context.Background(), "para mañana", "2025-01-01 10:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02 08:00", p.SalidaAbsoluta.String())
}

func TestService_ExtractAnswer(t *testing.T) {
	svc := NewService(WithMetrics(observability.NewMetrics()))
	ctx := context.Background()

	e, err := svc.ExtractAnswer(ctx, "Respuesta: 2025-03-04 18:30")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04 18:30", e.String())

	_, err = svc.ExtractAnswer(ctx, "no entendí la hora")
	assert.True(t, IsCode(err, ErrCodeNotFound))
}

func TestService_Speak(t *testing.T) {
	svc := NewService(WithMetrics(observability.NewMetrics()))
	ctx := context.Background()

	all, err := svc.Speak(ctx, "23:45", nil)
	require.NoError(t, err)
	assert.Contains(t, texts(all), "las doce menos cuarto de la madrugada")

	_, err = svc.Speak(ctx, "24:00", nil)
	assert.True(t, IsCode(err, ErrCodeBadFormat))
}

func TestMockTimeService(t *testing.T) {
	m := NewMockTimeService()
	ctx := context.Background()

	p, err := m.Predict(ctx, "esta noche", "2025-01-01 22:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02 21:00", p.SalidaAbsoluta.String())

	m.ExtractFunc = func(context.Context, string) (Extraction, error) {
		return Extraction{}, NotFound("stub")
	}
	_, err = m.ExtractAnswer(ctx, "2025-01-01 10:00")
	assert.True(t, IsCode(err, ErrCodeNotFound))

	assert.Equal(t, []string{"Predict", "ExtractAnswer"}, m.Calls())
}
