package corpus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/tiempo/plugin/hora"
)

func stripPrefix(t *testing.T, instruction string) string {
	t.Helper()
	for _, p := range DefaultPrefixes {
		if rest, ok := strings.CutPrefix(instruction, p); ok {
			return rest
		}
	}
	t.Fatalf("instruction %q has no known prefix", instruction)
	return ""
}

func TestNewGenerator_Defaults(t *testing.T) {
	opts := NewGenerator(Options{}).Options()
	assert.Equal(t, 1, opts.Iterations)
	assert.Equal(t, 5, opts.StepMinutes)
	assert.Positive(t, opts.Workers)
	assert.Equal(t, DefaultPrefixes, opts.Prefixes)
}

func TestTraining(t *testing.T) {
	g := NewGenerator(Options{Seed: 42, StepMinutes: 15, Iterations: 2, Workers: 4})
	records, err := g.Training(context.Background())
	require.NoError(t, err)

	// 96 steps, two iterations, at least two variants each, plus the special cases.
	assert.GreaterOrEqual(t, len(records), 96*2*2+len(specialCases))

	special := map[string]string{}
	for _, sc := range specialCases {
		special[sc.Instruction] = sc.Output
	}
	outputs := map[string]bool{}
	for _, r := range records {
		text := stripPrefix(t, r.Instruction)
		outputs[r.Output] = true
		if want, ok := special[text]; ok {
			assert.Equal(t, want, r.Output)
			continue
		}
		c, ok := hora.ParseSpoken(text)
		require.True(t, ok, "unparseable instruction %q", r.Instruction)
		assert.Equal(t, r.Output, c.String(), r.Instruction)
	}
	assert.Len(t, outputs, 96)
}

func TestTraining_Reproducible(t *testing.T) {
	ctx := context.Background()
	a, err := NewGenerator(Options{Seed: 7, StepMinutes: 30, Workers: 1}).Training(ctx)
	require.NoError(t, err)
	b, err := NewGenerator(Options{Seed: 7, StepMinutes: 30, Workers: 8}).Training(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewGenerator(Options{Seed: 8, StepMinutes: 30, Workers: 8}).Training(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestTraining_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGenerator(Options{Seed: 1}).Training(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContextual(t *testing.T) {
	g := NewGenerator(Options{Seed: 42, Workers: 4})
	records, err := g.Contextual(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, records, 500)

	for _, r := range records {
		assert.Equal(t, 2025, r.ContextoBase.Year, r.Peticion)
		expr := hora.ParseExpression(r.Peticion)
		require.False(t, hora.Degraded(expr), "degraded request %q", r.Peticion)
		assert.Equal(t, r.SalidaAbsoluta, hora.Resolve(r.ContextoBase, expr), r.Peticion)
		assert.True(t, r.ContextoBase.Before(r.SalidaAbsoluta), r.Peticion)
	}
}

func TestContextual_Reproducible(t *testing.T) {
	ctx := context.Background()
	a, err := NewGenerator(Options{Seed: 3, Workers: 1}).Contextual(ctx, 50)
	require.NoError(t, err)
	b, err := NewGenerator(Options{Seed: 3, Workers: 6}).Contextual(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestContextual_InvalidSize(t *testing.T) {
	_, err := NewGenerator(Options{}).Contextual(context.Background(), 0)
	assert.True(t, hora.IsCode(err, hora.ErrCodeOutOfRange))
}
