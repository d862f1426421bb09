package postgres

import (
	"context"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// AttachmentPostgres is a PostgreSQL implementation of
// repository.AttachmentRepository.
type AttachmentPostgres struct {
	db DBTX
}

// NewAttachmentPostgres creates a new AttachmentPostgres repository.
func NewAttachmentPostgres(db DBTX) *AttachmentPostgres {
	return &AttachmentPostgres{db: db}
}

var _ repository.AttachmentRepository = (*AttachmentPostgres)(nil)

const attachmentColumns = `id, record_id, filename, storage_path, size, content_type, created_at`

func scanAttachment(row rowScanner) (*model.Attachment, error) {
	var a model.Attachment
	if err := row.Scan(
		&a.ID,
		&a.RecordID,
		&a.Filename,
		&a.StoragePath,
		&a.Size,
		&a.ContentType,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new attachment row and returns the stored metadata.
func (r *AttachmentPostgres) Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error) {
	q := `
		INSERT INTO attachments (id, record_id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attachmentColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.RecordID,
		a.Filename,
		a.StoragePath,
		a.Size,
		a.ContentType,
		a.CreatedAt,
	)
	return scanAttachment(row)
}

// FindByID fetches a single attachment by its id.
func (r *AttachmentPostgres) FindByID(ctx context.Context, id string) (*model.Attachment, error) {
	q := `SELECT ` + attachmentColumns + ` FROM attachments WHERE id = $1`
	return scanAttachment(r.db.QueryRowContext(ctx, q, id))
}

// ListForRecord returns the record's attachments newest first.
func (r *AttachmentPostgres) ListForRecord(ctx context.Context, recordID int64) ([]model.Attachment, error) {
	q := `SELECT ` + attachmentColumns + ` FROM attachments WHERE record_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Attachment, 0)
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// Delete removes an attachment by id. It does not return an error if the row
// does not exist.
func (r *AttachmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM attachments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
