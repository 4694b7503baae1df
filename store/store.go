package store

import (
	"context"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"github.com/hrygo/tiempo/internal/profile"
)

// Store provides database access to generated corpora.
type Store struct {
	profile *profile.Profile
	driver  Driver
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

// CreateDataset assigns an id and creation time when they are unset.
func (s *Store) CreateDataset(ctx context.Context, create *Dataset) (*Dataset, error) {
	if create.ID == "" {
		create.ID = shortuuid.New()
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().Unix()
	}
	return s.driver.CreateDataset(ctx, create)
}

func (s *Store) ListDatasets(ctx context.Context, find *FindDataset) ([]*Dataset, error) {
	return s.driver.ListDatasets(ctx, find)
}

// GetDataset returns the first match, or nil when there is none.
func (s *Store) GetDataset(ctx context.Context, find *FindDataset) (*Dataset, error) {
	list, err := s.ListDatasets(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) DeleteDataset(ctx context.Context, delete *DeleteDataset) error {
	return s.driver.DeleteDataset(ctx, delete)
}

// SaveTrainingRecords stores records in a new training dataset, numbering them in order.
func (s *Store) SaveTrainingRecords(ctx context.Context, seed int64, records []*TrainingRecord) (*Dataset, error) {
	dataset, err := s.CreateDataset(ctx, &Dataset{Kind: DatasetTraining, Seed: seed})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create training dataset")
	}
	for i, r := range records {
		r.DatasetID, r.Seq = dataset.ID, i
	}
	if err := s.driver.InsertTrainingRecords(ctx, dataset.ID, records); err != nil {
		return nil, errors.Wrapf(err, "failed to insert records into dataset %s", dataset.ID)
	}
	dataset.RecordCount = len(records)
	return dataset, nil
}

func (s *Store) ListTrainingRecords(ctx context.Context, find *FindRecord) ([]*TrainingRecord, error) {
	return s.driver.ListTrainingRecords(ctx, find)
}

// SaveContextRecords stores records in a new contextual dataset, numbering them in order.
func (s *Store) SaveContextRecords(ctx context.Context, seed int64, records []*ContextRecord) (*Dataset, error) {
	dataset, err := s.CreateDataset(ctx, &Dataset{Kind: DatasetContextual, Seed: seed})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create contextual dataset")
	}
	for i, r := range records {
		r.DatasetID, r.Seq = dataset.ID, i
	}
	if err := s.driver.InsertContextRecords(ctx, dataset.ID, records); err != nil {
		return nil, errors.Wrapf(err, "failed to insert records into dataset %s", dataset.ID)
	}
	dataset.RecordCount = len(records)
	return dataset, nil
}

func (s *Store) ListContextRecords(ctx context.Context, find *FindRecord) ([]*ContextRecord, error) {
	return s.driver.ListContextRecords(ctx, find)
}
