package postgres

import (
	"context"
	"database/sql"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// ReceivementPostgres is a PostgreSQL implementation of
// repository.ReceivementRepository.
type ReceivementPostgres struct {
	db DBTX
}

// NewReceivementPostgres creates a new ReceivementPostgres repository.
func NewReceivementPostgres(db DBTX) *ReceivementPostgres {
	return &ReceivementPostgres{db: db}
}

var _ repository.ReceivementRepository = (*ReceivementPostgres)(nil)

const receivementColumns = `id, record_id, department_id, received, created_at, updated_at`

func scanReceivement(row rowScanner) (*model.Receivement, error) {
	var rcv model.Receivement
	if err := row.Scan(
		&rcv.ID,
		&rcv.RecordID,
		&rcv.DepartmentID,
		&rcv.Received,
		&rcv.CreatedAt,
		&rcv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rcv, nil
}

// Create inserts a receivement row.
func (r *ReceivementPostgres) Create(ctx context.Context, rcv *model.Receivement) (*model.Receivement, error) {
	q := `
		INSERT INTO receivements (record_id, department_id, received)
		VALUES ($1, $2, $3)
		RETURNING ` + receivementColumns
	row := r.db.QueryRowContext(ctx, q, rcv.RecordID, rcv.DepartmentID, rcv.Received)
	return scanReceivement(row)
}

// FindByID fetches a receivement by id.
func (r *ReceivementPostgres) FindByID(ctx context.Context, id int64) (*model.Receivement, error) {
	q := `SELECT ` + receivementColumns + ` FROM receivements WHERE id = $1`
	return scanReceivement(r.db.QueryRowContext(ctx, q, id))
}

// FindByIDForUpdate fetches a receivement and locks its row.
func (r *ReceivementPostgres) FindByIDForUpdate(ctx context.Context, id int64) (*model.Receivement, error) {
	q := `SELECT ` + receivementColumns + ` FROM receivements WHERE id = $1 FOR UPDATE`
	return scanReceivement(r.db.QueryRowContext(ctx, q, id))
}

// MarkReceived flips the received flag to true.
func (r *ReceivementPostgres) MarkReceived(ctx context.Context, id int64) error {
	const q = `UPDATE receivements SET received = TRUE, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListForRecord returns the record's receivements oldest first.
func (r *ReceivementPostgres) ListForRecord(ctx context.Context, recordID int64) ([]model.Receivement, error) {
	q := `SELECT ` + receivementColumns + ` FROM receivements WHERE record_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Receivement, 0)
	for rows.Next() {
		rcv, err := scanReceivement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rcv)
	}
	return items, rows.Err()
}
