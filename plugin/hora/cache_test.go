package hora

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/tiempo/internal/observability"
)

func TestExpressionCache_Evicts(t *testing.T) {
	c := newExpressionCache(2)
	c.put("a", Unrecognized{Text: "a"})
	c.put("b", Unrecognized{Text: "b"})

	_, ok := c.get("a") // a becomes most recent
	require.True(t, ok)
	c.put("c", Unrecognized{Text: "c"})

	assert.Equal(t, 2, c.len())
	_, ok = c.get("b")
	assert.False(t, ok)
	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, Unrecognized{Text: "a"}, got)

	c.put("a", DayOffset{Days: 1})
	got, _ = c.get("a")
	assert.Equal(t, DayOffset{Days: 1}, got)
	assert.Equal(t, 2, c.len())
}

func TestService_CachedPredict(t *testing.T) {
	svc := NewService(WithCacheSize(8), WithMetrics(observability.NewMetrics()))
	ctx := context.Background()

	first, err := svc.Predict(ctx, "pasado mañana a las siete y media de la tarde", "2025-01-01 10:00")
	require.NoError(t, err)
	second, err := svc.Predict(ctx, "pasado mañana a las siete y media de la tarde", "2025-02-10 08:00")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-03 19:30", first.SalidaAbsoluta.String())
	assert.Equal(t, "2025-02-12 19:30", second.SalidaAbsoluta.String())
	assert.Equal(t, 1, svc.cache.len())
}
