package repository

import (
	"context"

	"recordapi/internal/model"
)

// ReceivementRepository manages pending-confirmation tokens. A receivement is
// created at forward time and mutated exactly once, when the destination
// department confirms it.
type ReceivementRepository interface {
	// Create inserts a receivement with received=false.
	Create(ctx context.Context, r *model.Receivement) (*model.Receivement, error)

	// FindByID returns a receivement by id.
	FindByID(ctx context.Context, id int64) (*model.Receivement, error)

	// FindByIDForUpdate returns a receivement with its row locked, so a
	// confirmation cannot race another confirmation of the same token.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Receivement, error)

	// MarkReceived flips the received flag to true.
	MarkReceived(ctx context.Context, id int64) error

	// ListForRecord returns the record's receivements, oldest first.
	ListForRecord(ctx context.Context, recordID int64) ([]model.Receivement, error)
}
