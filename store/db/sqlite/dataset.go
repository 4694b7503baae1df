package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hrygo/tiempo/store"
)

func (d *DB) CreateDataset(ctx context.Context, create *store.Dataset) (*store.Dataset, error) {
	fields := []string{"id", "kind", "seed", "record_count", "created_ts"}
	args := []any{create.ID, create.Kind, create.Seed, create.RecordCount, create.CreatedTs}

	stmt := `INSERT INTO dataset (` + strings.Join(fields, ", ") + `) VALUES (` + placeholders(len(args)) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to create dataset")
	}
	return create, nil
}

func (d *DB) ListDatasets(ctx context.Context, find *store.FindDataset) ([]*store.Dataset, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "dataset.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Kind; v != nil {
		where, args = append(where, "dataset.kind = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, kind, seed, record_count, created_ts
		FROM dataset
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC, id ASC`
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list datasets")
	}
	defer rows.Close()

	list := []*store.Dataset{}
	for rows.Next() {
		var ds store.Dataset
		if err := rows.Scan(&ds.ID, &ds.Kind, &ds.Seed, &ds.RecordCount, &ds.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan dataset")
		}
		list = append(list, &ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (d *DB) DeleteDataset(ctx context.Context, delete *store.DeleteDataset) error {
	result, err := d.db.ExecContext(ctx, `DELETE FROM dataset WHERE id = `+placeholder(1), delete.ID)
	if err != nil {
		return errors.Wrap(err, "failed to delete dataset")
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.Errorf("dataset %s not found", delete.ID)
	}
	return nil
}

func (d *DB) InsertTrainingRecords(ctx context.Context, datasetID string, records []*store.TrainingRecord) error {
	return d.insert(ctx, datasetID, len(records),
		`INSERT INTO training_record (dataset_id, seq, instruction, output) VALUES (`+placeholders(4)+`)`,
		func(i int) []any {
			r := records[i]
			return []any{datasetID, r.Seq, r.Instruction, r.Output}
		})
}

func (d *DB) InsertContextRecords(ctx context.Context, datasetID string, records []*store.ContextRecord) error {
	return d.insert(ctx, datasetID, len(records),
		`INSERT INTO context_record (dataset_id, seq, peticion, contexto_base, salida_absoluta) VALUES (`+placeholders(5)+`)`,
		func(i int) []any {
			r := records[i]
			return []any{datasetID, r.Seq, r.Peticion, r.ContextoBase, r.SalidaAbsoluta}
		})
}

// insert runs n executions of stmt and the record count update in one transaction.
func (d *DB) insert(ctx context.Context, datasetID string, n int, stmt string, argsAt func(i int) []any) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to start transaction")
	}
	defer tx.Rollback()

	prepared, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer prepared.Close()

	for i := 0; i < n; i++ {
		if _, err := prepared.ExecContext(ctx, argsAt(i)...); err != nil {
			return errors.Wrapf(err, "failed to insert record %d", i)
		}
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE dataset SET record_count = record_count + `+placeholder(1)+` WHERE id = `+placeholder(2), n, datasetID)
	if err != nil {
		return errors.Wrap(err, "failed to update record count")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errors.Errorf("dataset %s not found", datasetID)
	}
	return tx.Commit()
}

func (d *DB) ListTrainingRecords(ctx context.Context, find *store.FindRecord) ([]*store.TrainingRecord, error) {
	query := `SELECT dataset_id, seq, instruction, output FROM training_record
		WHERE dataset_id = ` + placeholder(1) + ` AND seq >= ` + placeholder(2) + ` ORDER BY seq ASC`
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}
	rows, err := d.db.QueryContext(ctx, query, find.DatasetID, find.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list training records")
	}
	defer rows.Close()

	list := []*store.TrainingRecord{}
	for rows.Next() {
		var r store.TrainingRecord
		if err := rows.Scan(&r.DatasetID, &r.Seq, &r.Instruction, &r.Output); err != nil {
			return nil, errors.Wrap(err, "failed to scan training record")
		}
		list = append(list, &r)
	}
	return list, rows.Err()
}

func (d *DB) ListContextRecords(ctx context.Context, find *store.FindRecord) ([]*store.ContextRecord, error) {
	query := `SELECT dataset_id, seq, peticion, contexto_base, salida_absoluta FROM context_record
		WHERE dataset_id = ` + placeholder(1) + ` AND seq >= ` + placeholder(2) + ` ORDER BY seq ASC`
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}
	rows, err := d.db.QueryContext(ctx, query, find.DatasetID, find.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list context records")
	}
	defer rows.Close()

	list := []*store.ContextRecord{}
	for rows.Next() {
		var r store.ContextRecord
		if err := rows.Scan(&r.DatasetID, &r.Seq, &r.Peticion, &r.ContextoBase, &r.SalidaAbsoluta); err != nil {
			return nil, errors.Wrap(err, "failed to scan context record")
		}
		list = append(list, &r)
	}
	return list, rows.Err()
}
