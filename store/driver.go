package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Dataset model related methods.
	CreateDataset(ctx context.Context, create *Dataset) (*Dataset, error)
	ListDatasets(ctx context.Context, find *FindDataset) ([]*Dataset, error)
	DeleteDataset(ctx context.Context, delete *DeleteDataset) error

	// Record model related methods. Inserts are atomic and bump the dataset's record count.
	InsertTrainingRecords(ctx context.Context, datasetID string, records []*TrainingRecord) error
	ListTrainingRecords(ctx context.Context, find *FindRecord) ([]*TrainingRecord, error)
	InsertContextRecords(ctx context.Context, datasetID string, records []*ContextRecord) error
	ListContextRecords(ctx context.Context, find *FindRecord) ([]*ContextRecord, error)
}
