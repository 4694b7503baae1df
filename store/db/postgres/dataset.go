package postgres

import (
	"context"
	"strings"

	"github.com/lib/pq"
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
		query += " LIMIT " + placeholder(len(args)+1)
		args = append(args, *v)
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
	result, err := d.db.ExecContext(ctx, `DELETE FROM dataset WHERE id = $1`, delete.ID)
	if err != nil {
		return errors.Wrap(err, "failed to delete dataset")
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.Errorf("dataset %s not found", delete.ID)
	}
	return nil
}

func (d *DB) InsertTrainingRecords(ctx context.Context, datasetID string, records []*store.TrainingRecord) error {
	return d.copyIn(ctx, datasetID, len(records),
		pq.CopyIn("training_record", "dataset_id", "seq", "instruction", "output"),
		func(i int) []any {
			r := records[i]
			return []any{datasetID, r.Seq, r.Instruction, r.Output}
		})
}

func (d *DB) InsertContextRecords(ctx context.Context, datasetID string, records []*store.ContextRecord) error {
	return d.copyIn(ctx, datasetID, len(records),
		pq.CopyIn("context_record", "dataset_id", "seq", "peticion", "contexto_base", "salida_absoluta"),
		func(i int) []any {
			r := records[i]
			return []any{datasetID, r.Seq, r.Peticion, r.ContextoBase, r.SalidaAbsoluta}
		})
}

// copyIn streams n rows with COPY FROM STDIN and bumps the record count, in one transaction.
func (d *DB) copyIn(ctx context.Context, datasetID string, n int, stmt string, rowAt func(i int) []any) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to start transaction")
	}
	defer tx.Rollback()

	copyStmt, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return errors.Wrap(err, "failed to prepare copy")
	}
	for i := 0; i < n; i++ {
		if _, err := copyStmt.ExecContext(ctx, rowAt(i)...); err != nil {
			copyStmt.Close()
			return errors.Wrapf(err, "failed to copy record %d", i)
		}
	}
	// An empty exec flushes the buffered rows.
	if _, err := copyStmt.ExecContext(ctx); err != nil {
		copyStmt.Close()
		return errors.Wrap(err, "failed to flush copy")
	}
	if err := copyStmt.Close(); err != nil {
		return errors.Wrap(err, "failed to close copy")
	}

	result, err := tx.ExecContext(ctx, `UPDATE dataset SET record_count = record_count + $1 WHERE id = $2`, n, datasetID)
	if err != nil {
		return errors.Wrap(err, "failed to update record count")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errors.Errorf("dataset %s not found", datasetID)
	}
	return tx.Commit()
}

func (d *DB) ListTrainingRecords(ctx context.Context, find *store.FindRecord) ([]*store.TrainingRecord, error) {
	query, args := recordQuery("SELECT dataset_id, seq, instruction, output FROM training_record", find)
	rows, err := d.db.QueryContext(ctx, query, args...)
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
	query, args := recordQuery("SELECT dataset_id, seq, peticion, contexto_base, salida_absoluta FROM context_record", find)
	rows, err := d.db.QueryContext(ctx, query, args...)
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

func recordQuery(selectFrom string, find *store.FindRecord) (string, []any) {
	args := []any{find.DatasetID, find.Offset}
	query := selectFrom + ` WHERE dataset_id = $1 AND seq >= $2 ORDER BY seq ASC`
	if v := find.Limit; v != nil {
		query += " LIMIT " + placeholder(len(args)+1)
		args = append(args, *v)
	}
	return query, args
}
