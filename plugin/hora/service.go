package hora

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrygo/tiempo/internal/observability"
)

// Service implements TimeService with the rule-based engine.
type Service struct {
	resolver Resolver
	logger   *slog.Logger
	metrics  *observability.Metrics
	cache    *expressionCache
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultClock sets the time of day used when a day or weekday request names no time.
func WithDefaultClock(c ClockTime) Option {
	return func(s *Service) { s.resolver.DefaultClock = &c }
}

// WithLogger sets the logger used when the context carries no run logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMetrics sets the metrics sink. Defaults to observability.GlobalMetrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithCacheSize keeps up to n parsed requests for reuse. Zero or less disables the cache.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		s.cache = nil
		if n > 0 {
			s.cache = newExpressionCache(n)
		}
	}
}

// NewService creates a new time service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger:  slog.Default(),
		metrics: observability.GlobalMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Speak renders an "HH:MM" clock as Spanish phrases.
func (s *Service) Speak(_ context.Context, clock string, pick Picker) ([]PhraseVariant, error) {
	start := time.Now()
	c, err := ParseClock(clock)
	if err != nil {
		s.metrics.RecordFailure("speak")
		return nil, err
	}
	var out []PhraseVariant
	if pick == nil {
		out, err = Variants(c)
	} else {
		out, err = Synthesize(c, pick)
	}
	s.metrics.RecordRequest("speak", time.Since(start))
	return out, err
}

// Predict resolves a request against a context timestamp. A malformed context is a format
// error and nothing is resolved.
func (s *Service) Predict(ctx context.Context, peticion, contextoBase string) (Prediction, error) {
	start := time.Now()
	logger := observability.LoggerFrom(ctx, s.logger)

	base, err := ParseTimestamp(contextoBase)
	if err != nil {
		s.metrics.RecordFailure("predict")
		logger.Warn("rejected context timestamp",
			slog.String("contexto_base", contextoBase),
			slog.String(observability.LogFieldErrorCode, string(ErrCodeBadFormat)))
		return Prediction{}, err
	}

	expr := s.parse(peticion)
	degraded := Degraded(expr)
	p := Prediction{
		Peticion:       peticion,
		ContextoBase:   base,
		SalidaAbsoluta: s.resolver.Resolve(base, expr),
		Kind:           expr.Kind(),
		Degraded:       degraded,
	}

	s.metrics.RecordRequest("predict", time.Since(start))
	s.metrics.RecordResolution(string(expr.Kind()), degraded)
	level := slog.LevelDebug
	if degraded {
		level = slog.LevelWarn
	}
	logger.LogAttrs(ctx, level, "resolved request",
		slog.String(observability.LogFieldExpressionKind, string(expr.Kind())),
		slog.Bool(observability.LogFieldDegraded, degraded),
		slog.String("salida_absoluta", p.SalidaAbsoluta.String()))
	return p, nil
}

func (s *Service) parse(peticion string) Expression {
	if s.cache == nil {
		return ParseExpression(peticion)
	}
	if expr, ok := s.cache.get(peticion); ok {
		return expr
	}
	expr := ParseExpression(peticion)
	s.cache.put(peticion, expr)
	return expr
}

// ExtractAnswer recovers a canonical timestamp from raw generated text.
func (s *Service) ExtractAnswer(ctx context.Context, raw string) (Extraction, error) {
	start := time.Now()
	e, err := Extract(raw)
	if err != nil {
		s.metrics.RecordFailure("extract")
		observability.LoggerFrom(ctx, s.logger).LogAttrs(ctx, slog.LevelWarn, "no timestamp in answer",
			slog.String(observability.LogFieldErrorCode, string(ErrCodeNotFound)),
			slog.Int("length", len(raw)))
		return Extraction{}, err
	}
	s.metrics.RecordRequest("extract", time.Since(start))
	return e, nil
}

// Ensure Service implements TimeService
var _ TimeService = (*Service)(nil)
