package corpus

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/hrygo/tiempo/plugin/hora"
)

// TrainingRecord pairs an instruction containing a spoken time with its "HH:MM" answer.
type TrainingRecord struct {
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
}

// ContextRecord pairs a request and the moment it was made with the resolved pickup time.
type ContextRecord struct {
	Peticion       string         `json:"peticion"`
	ContextoBase   hora.Timestamp `json:"contexto_base"`
	SalidaAbsoluta hora.Timestamp `json:"salida_absoluta"`
}

// Record is any row the corpus writes.
type Record interface {
	TrainingRecord | ContextRecord
}

// WriteJSONL writes one JSON object per line. Non-ASCII text is written verbatim.
func WriteJSONL[T Record](w io.Writer, records []T) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return errors.Wrapf(err, "failed to encode record %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "failed to flush records")
}

// ReadJSONL reads records written by WriteJSONL. Blank lines are skipped.
func ReadJSONL[T Record](r io.Reader) ([]T, error) {
	var out []T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to decode line %d", line)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read records")
	}
	return out, nil
}
