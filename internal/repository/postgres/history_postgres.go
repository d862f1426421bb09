package postgres

import (
	"context"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// HistoryPostgres is a PostgreSQL implementation of repository.HistoryRepository.
// The history table is insert-only; there is deliberately no update or delete.
type HistoryPostgres struct {
	db DBTX
}

// NewHistoryPostgres creates a new HistoryPostgres repository.
func NewHistoryPostgres(db DBTX) *HistoryPostgres {
	return &HistoryPostgres{db: db}
}

var _ repository.HistoryRepository = (*HistoryPostgres)(nil)

const historyColumns = `id, record_id, event, created_by, forwarded_by, closed_by, reopened_by,
	received_by, origin_id, origin_name, destination_id, destination_name, reason, created_at`

func scanHistory(row rowScanner) (*model.History, error) {
	var h model.History
	if err := row.Scan(
		&h.ID,
		&h.RecordID,
		&h.Event,
		&h.CreatedBy,
		&h.ForwardedBy,
		&h.ClosedBy,
		&h.ReopenedBy,
		&h.ReceivedBy,
		&h.OriginID,
		&h.OriginName,
		&h.DestinationID,
		&h.DestinationName,
		&h.Reason,
		&h.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &h, nil
}

// Append inserts a new history entry and returns the stored row.
func (r *HistoryPostgres) Append(ctx context.Context, h *model.History) (*model.History, error) {
	q := `
		INSERT INTO history (record_id, event, created_by, forwarded_by, closed_by, reopened_by,
			received_by, origin_id, origin_name, destination_id, destination_name, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + historyColumns
	row := r.db.QueryRowContext(ctx, q,
		h.RecordID,
		h.Event,
		h.CreatedBy,
		h.ForwardedBy,
		h.ClosedBy,
		h.ReopenedBy,
		h.ReceivedBy,
		h.OriginID,
		h.OriginName,
		h.DestinationID,
		h.DestinationName,
		h.Reason,
	)
	return scanHistory(row)
}

// ListForRecord returns the record's history entries oldest first.
func (r *HistoryPostgres) ListForRecord(ctx context.Context, recordID int64) ([]model.History, error) {
	q := `SELECT ` + historyColumns + ` FROM history WHERE record_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.History, 0)
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *h)
	}
	return entries, rows.Err()
}

// CountByForwarder counts history entries forwarded by the given actor.
func (r *HistoryPostgres) CountByForwarder(ctx context.Context, email string) (int, error) {
	const q = `SELECT COUNT(*) FROM history WHERE forwarded_by = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByReceiver counts history entries received by the given actor.
func (r *HistoryPostgres) CountByReceiver(ctx context.Context, email string) (int, error) {
	const q = `SELECT COUNT(*) FROM history WHERE received_by = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
