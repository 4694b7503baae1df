package store

// DatasetKind is the record schema held by a dataset.
type DatasetKind string

const (
	DatasetTraining   DatasetKind = "training"
	DatasetContextual DatasetKind = "contextual"
)

// Dataset is one generated corpus.
type Dataset struct {
	ID          string
	Kind        DatasetKind
	Seed        int64
	RecordCount int
	CreatedTs   int64
}

type FindDataset struct {
	ID    *string
	Kind  *DatasetKind
	Limit *int
}

type DeleteDataset struct {
	ID string
}

// TrainingRecord is a stored instruction/answer pair. Seq keeps the generated order.
type TrainingRecord struct {
	DatasetID   string
	Seq         int
	Instruction string
	Output      string
}

// ContextRecord is a stored request with its context and resolved timestamps, both in
// "YYYY-MM-DD HH:MM" form.
type ContextRecord struct {
	DatasetID      string
	Seq            int
	Peticion       string
	ContextoBase   string
	SalidaAbsoluta string
}

type FindRecord struct {
	DatasetID string
	Offset    int
	Limit     *int
}
