package repository

import (
	"context"

	"recordapi/internal/model"
)

// HistoryRepository is the append-only audit ledger. Entries are never
// updated or deleted.
type HistoryRepository interface {
	// Append inserts a new history entry and returns it with id and
	// created_at populated.
	Append(ctx context.Context, h *model.History) (*model.History, error)

	// ListForRecord returns the record's history oldest first.
	ListForRecord(ctx context.Context, recordID int64) ([]model.History, error)

	// CountByForwarder counts entries with the given forwarded_by actor.
	CountByForwarder(ctx context.Context, email string) (int, error)

	// CountByReceiver counts entries with the given received_by actor.
	CountByReceiver(ctx context.Context, email string) (int, error)
}
