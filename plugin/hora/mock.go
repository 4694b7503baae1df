package hora

import (
	"context"
	"sync"

	"github.com/hrygo/tiempo/internal/observability"
)

// MockTimeService is a TimeService for tests of code that consumes the engine. Unset hooks
// fall through to the real rule-based Service; every call is recorded.
type MockTimeService struct {
	SpeakFunc   func(ctx context.Context, clock string, pick Picker) ([]PhraseVariant, error)
	PredictFunc func(ctx context.Context, peticion, contextoBase string) (Prediction, error)
	ExtractFunc func(ctx context.Context, raw string) (Extraction, error)

	mu    sync.Mutex
	calls []string
	real  *Service
}

// NewMockTimeService creates a new MockTimeService backed by a metrics-isolated Service.
func NewMockTimeService() *MockTimeService {
	return &MockTimeService{real: NewService(WithMetrics(observability.NewMetrics()))}
}

// Calls returns the names of the methods called so far, in order.
func (m *MockTimeService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockTimeService) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

// Speak renders an "HH:MM" clock as Spanish phrases.
func (m *MockTimeService) Speak(ctx context.Context, clock string, pick Picker) ([]PhraseVariant, error) {
	m.record("Speak")
	if m.SpeakFunc != nil {
		return m.SpeakFunc(ctx, clock, pick)
	}
	return m.real.Speak(ctx, clock, pick)
}

// Predict resolves a request against a context timestamp.
func (m *MockTimeService) Predict(ctx context.Context, peticion, contextoBase string) (Prediction, error) {
	m.record("Predict")
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, peticion, contextoBase)
	}
	return m.real.Predict(ctx, peticion, contextoBase)
}

// ExtractAnswer recovers a canonical timestamp from raw generated text.
func (m *MockTimeService) ExtractAnswer(ctx context.Context, raw string) (Extraction, error) {
	m.record("ExtractAnswer")
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, raw)
	}
	return m.real.ExtractAnswer(ctx, raw)
}

var _ TimeService = (*MockTimeService)(nil)
