// Package hora converts between digital clock times and Spanish time expressions.
//
// It renders times as Spanish phrases, resolves relative requests such as "mañana a las
// cinco y media" against a context timestamp, and extracts canonical timestamps from
// free text. Every function is pure; randomness enters only through a caller-supplied Picker.
package hora

import "context"

// TimeService is the engine surface consumed by corpus writers and prediction layers.
type TimeService interface {
	// Speak renders an "HH:MM" clock as Spanish phrases.
	// A nil pick enumerates every day-part variant deterministically.
	Speak(ctx context.Context, clock string, pick Picker) ([]PhraseVariant, error)

	// Predict resolves a request ("peticion") against a "YYYY-MM-DD HH:MM" context.
	Predict(ctx context.Context, peticion, contextoBase string) (Prediction, error)

	// ExtractAnswer recovers a canonical timestamp from raw generated text.
	ExtractAnswer(ctx context.Context, raw string) (Extraction, error)
}

// Prediction is the outcome of resolving one request.
type Prediction struct {
	Peticion       string         `json:"peticion_recibida"`
	ContextoBase   Timestamp      `json:"contexto_base"`
	SalidaAbsoluta Timestamp      `json:"salida_absoluta"`
	Kind           ExpressionKind `json:"expression"`
	// Degraded is set when no rule matched and SalidaAbsoluta is the context itself.
	Degraded bool `json:"degraded"`
}
