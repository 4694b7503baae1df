// Package corpus generates training and contextual datasets from the time engine.
//
// Items are built concurrently, each from its own random source seeded by the generator
// seed and the item index, so a seed always yields the same corpus regardless of how the
// work is scheduled. Ordering is decided once, by a single shuffle after all items exist.
package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hrygo/tiempo/internal/observability"
	"github.com/hrygo/tiempo/plugin/hora"
)

// DefaultPrefixes are the instruction prefixes placed before a spoken time.
var DefaultPrefixes = []string{
	"convierte esta hora en texto: ",
	"escribe la hora en palabras: ",
	"¿cómo se dice esta hora?: ",
	"ahora mismo son las: ",
}

// specialCases are spoken forms outside the synthesis rules.
var specialCases = []TrainingRecord{
	{Instruction: "medianoche", Output: "00:00"},
	{Instruction: "el mediodía", Output: "12:00"},
	{Instruction: "mediodía en punto", Output: "12:00"},
	{Instruction: "doce de la noche", Output: "00:00"},
}

var contextYear = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options configures a Generator. Zero values take defaults.
type Options struct {
	Seed        int64
	Iterations  int
	StepMinutes int
	Workers     int
	Prefixes    []string
}

// Generator builds corpora. It is safe for concurrent use.
type Generator struct {
	opts     Options
	resolver hora.Resolver
	metrics  *observability.Metrics
}

// NewGenerator creates a generator, filling defaults for unset options.
func NewGenerator(opts Options) *Generator {
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	if opts.StepMinutes <= 0 || opts.StepMinutes > 1440 {
		opts.StepMinutes = 5
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if len(opts.Prefixes) == 0 {
		opts.Prefixes = DefaultPrefixes
	}
	return &Generator{opts: opts, metrics: observability.GlobalMetrics()}
}

// WithResolver sets the resolver used to label contextual records.
func (g *Generator) WithResolver(r hora.Resolver) *Generator {
	g.resolver = r
	return g
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

func (g *Generator) rng(stream, index int) *rand.Rand {
	return rand.New(rand.NewSource(g.opts.Seed*1_000_003 + int64(stream)<<32 + int64(index)))
}

// Training renders every step of the day, Iterations times, as instruction/answer pairs.
func (g *Generator) Training(ctx context.Context) ([]TrainingRecord, error) {
	start := time.Now()
	var steps []hora.ClockTime
	for _, c := range hora.AllClockTimes() {
		if (c.Hour*60+c.Minute)%g.opts.StepMinutes == 0 {
			steps = append(steps, c)
		}
	}

	items := make([][]TrainingRecord, len(steps)*g.opts.Iterations)
	err := g.each(ctx, len(items), func(i int) error {
		rng := g.rng(1, i)
		c := steps[i%len(steps)]
		variants, err := hora.Synthesize(c, rng)
		if err != nil {
			return err
		}
		recs := make([]TrainingRecord, 0, len(variants))
		for _, v := range variants {
			recs = append(recs, TrainingRecord{
				Instruction: g.prefix(rng) + v.Text,
				Output:      c.String(),
			})
		}
		items[i] = recs
		return nil
	})
	if err != nil {
		g.metrics.RecordFailure("training")
		return nil, err
	}

	order := g.rng(0, 0)
	out := slices.Concat(items...)
	for _, sc := range specialCases {
		out = append(out, TrainingRecord{Instruction: g.prefix(order) + sc.Instruction, Output: sc.Output})
	}
	order.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	g.metrics.RecordRequest("training", time.Since(start))
	observability.LoggerFrom(ctx, slog.Default()).Info("generated training corpus",
		slog.Int(observability.LogFieldRecords, len(out)),
		slog.Int("steps", len(steps)),
		slog.Int("iterations", g.opts.Iterations))
	return out, nil
}

// Contextual builds n request records over context timestamps spread across 2025. Each
// round yields a duration request, a day request with a spoken time and, half of the time,
// a day-part request. Labels come from resolving the expression the text was built from.
func (g *Generator) Contextual(ctx context.Context, n int) ([]ContextRecord, error) {
	if n <= 0 {
		return nil, hora.OutOfRange("records", n, 1, 1<<31-1)
	}
	start := time.Now()
	rounds := (n + 1) / 2

	items := make([][]ContextRecord, rounds)
	err := g.each(ctx, rounds, func(i int) error {
		recs, err := g.contextRound(g.rng(2, i))
		if err != nil {
			return err
		}
		items[i] = recs
		return nil
	})
	if err != nil {
		g.metrics.RecordFailure("contextual")
		return nil, err
	}

	out := slices.Concat(items...)
	order := g.rng(0, 1)
	order.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > n {
		out = out[:n]
	}

	g.metrics.RecordRequest("contextual", time.Since(start))
	observability.LoggerFrom(ctx, slog.Default()).Info("generated contextual corpus",
		slog.Int(observability.LogFieldRecords, len(out)),
		slog.Int("rounds", rounds))
	return out, nil
}

func (g *Generator) contextRound(rng *rand.Rand) ([]ContextRecord, error) {
	base := hora.FromTime(contextYear.
		AddDate(0, 0, rng.Intn(365)).
		Add(time.Duration(rng.Intn(24))*time.Hour + time.Duration(rng.Intn(60))*time.Minute))

	record := func(text string, expr hora.Expression) ContextRecord {
		return ContextRecord{Peticion: text, ContextoBase: base, SalidaAbsoluta: g.resolver.Resolve(base, expr)}
	}

	triggers := hora.DurationTriggers()
	phrases := slices.Sorted(maps.Keys(triggers))
	phrase := phrases[rng.Intn(len(phrases))]
	out := []ContextRecord{record(
		fmt.Sprintf("Quiero un taxi dentro de %s.", phrase),
		hora.DurationDelta{Delta: triggers[phrase], Trigger: phrase},
	)}

	target := base.AddDays(1 + rng.Intn(7)).
		Add(time.Duration(rng.Intn(25)-12)*time.Hour + time.Duration(rng.Intn(61)-30)*time.Minute).
		Clock()
	variants, err := hora.Synthesize(target, rng)
	if err != nil {
		return nil, err
	}
	// The first variant is the 24-hour anchor, which reads as a duration in a request.
	spoken := variants[1+rng.Intn(len(variants)-1)].Text

	var day string
	var expr hora.Expression
	switch rng.Intn(3) {
	case 0:
		day, expr = "mañana", hora.DayOffset{Days: 1, At: &target}
	case 1:
		day, expr = "pasado mañana", hora.DayOffset{Days: 2, At: &target}
	default:
		wd := rng.Intn(len(hora.Weekdays))
		day, expr = "el "+hora.Weekdays[wd], hora.WeekdayTarget{Weekday: wd, At: &target}
	}
	out = append(out, record(fmt.Sprintf("Quiero reservar un taxi para %s a %s.", day, spoken), expr))

	if rng.Intn(2) == 0 {
		kinds := []hora.AnchorKind{hora.EstaNoche, hora.EstaTarde, hora.EstaManana}
		kind := kinds[rng.Intn(len(kinds))]
		out = append(out, record(
			fmt.Sprintf("Necesito un taxi para %s.", kind.Trigger()),
			hora.DayPartAnchor{Anchor: kind},
		))
	}
	return out, nil
}

func (g *Generator) prefix(rng *rand.Rand) string {
	return g.opts.Prefixes[rng.Intn(len(g.opts.Prefixes))]
}

// each runs fn for indexes [0, n) on at most Workers goroutines.
func (g *Generator) each(ctx context.Context, n int, fn func(i int) error) error {
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return errors.Wrapf(fn(i), "item %d", i)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return errors.Wrap(ctx.Err(), "corpus generation cancelled")
}
