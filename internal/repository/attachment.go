package repository

import (
	"context"

	"recordapi/internal/model"
)

// AttachmentRepository defines data access for record attachments. Only
// metadata lives here; the content is in object storage.
type AttachmentRepository interface {
	// Create inserts a new attachment row.
	Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error)

	// FindByID returns an attachment by its id.
	FindByID(ctx context.Context, id string) (*model.Attachment, error)

	// ListForRecord returns the record's attachments, newest first.
	ListForRecord(ctx context.Context, recordID int64) ([]model.Attachment, error)

	// Delete removes an attachment by id. Returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id string) error
}
