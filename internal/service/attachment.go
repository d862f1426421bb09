package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"recordapi/internal/model"
	"recordapi/internal/repository"
	"recordapi/internal/storage"
)

// AttachmentService defines the use cases for files attached to records.
type AttachmentService interface {
	// Upload streams the content to object storage, saves metadata to the
	// database, and rolls back the stored object if the DB save fails.
	// originalFilename only supplies the extension; the stored object name is
	// a UUID plus that extension.
	Upload(ctx context.Context, recordID int64, r io.Reader, originalFilename string, contentType string, size int64) (*model.Attachment, error)

	// List returns the record's attachments.
	List(ctx context.Context, recordID int64) ([]model.Attachment, error)

	// PresignDownload returns a time-limited URL for the attachment content.
	PresignDownload(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes an attachment from storage and from the database.
	Delete(ctx context.Context, id string) error
}

// attachmentService is a concrete implementation of AttachmentService.
type attachmentService struct {
	store storage.Storage
	repos repository.Repositories
}

// NewAttachmentService constructs a new AttachmentService.
func NewAttachmentService(store storage.Storage, repos repository.Repositories) AttachmentService {
	return &attachmentService{store: store, repos: repos}
}

func (s *attachmentService) Upload(ctx context.Context, recordID int64, r io.Reader, originalFilename string, contentType string, size int64) (*model.Attachment, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if _, err := s.repos.Records.FindByID(ctx, recordID); err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}

	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("records", fmt.Sprint(recordID), genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	att := &model.Attachment{
		ID:          uuid.New().String(),
		RecordID:    recordID,
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repos.Attachments.Create(ctx, att)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *attachmentService) List(ctx context.Context, recordID int64) ([]model.Attachment, error) {
	if _, err := s.repos.Records.FindByID(ctx, recordID); err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}
	return s.repos.Attachments.ListForRecord(ctx, recordID)
}

func (s *attachmentService) PresignDownload(ctx context.Context, id string, expiry time.Duration) (string, error) {
	att, err := s.repos.Attachments.FindByID(ctx, id)
	if err != nil {
		return "", mapNoRows(err, ErrAttachmentNotFound)
	}
	return s.store.PresignGet(ctx, att.StoragePath, expiry)
}

// Delete removes the object from storage first; if that fails the DB row is
// kept so the storage reference is not lost.
func (s *attachmentService) Delete(ctx context.Context, id string) error {
	att, err := s.repos.Attachments.FindByID(ctx, id)
	if err != nil {
		return mapNoRows(err, ErrAttachmentNotFound)
	}
	if err := s.store.Delete(ctx, att.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repos.Attachments.Delete(ctx, id)
}
