package postgres

import (
	"context"

	"recordapi/internal/repository"
)

// SequencePostgres allocates per-year register number sequences backed by the
// record_sequences table.
type SequencePostgres struct {
	db DBTX
}

// NewSequencePostgres creates a new SequencePostgres repository.
func NewSequencePostgres(db DBTX) *SequencePostgres {
	return &SequencePostgres{db: db}
}

var _ repository.SequenceRepository = (*SequencePostgres)(nil)

// Next returns the next sequence value for the given year. The upsert is
// atomic, so concurrent callers always observe strictly increasing values;
// the first call of a new year starts the counter at 1.
func (r *SequencePostgres) Next(ctx context.Context, year int) (int64, error) {
	const q = `
		INSERT INTO record_sequences (year, seq)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET seq = record_sequences.seq + 1
		RETURNING seq
	`
	var seq int64
	if err := r.db.QueryRowContext(ctx, q, year).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}
