package repository

import (
	"context"

	"recordapi/internal/model"
)

// TagRepository reads the tag catalog.
type TagRepository interface {
	// FindByID returns a tag by id.
	FindByID(ctx context.Context, id int64) (*model.Tag, error)

	// List returns all tags.
	List(ctx context.Context) ([]model.Tag, error)
}

// LookupRepository reads the static lookup tables.
type LookupRepository interface {
	// ListFields returns the record form field descriptions.
	ListFields(ctx context.Context) ([]model.Field, error)

	// ListSections returns the organizational sections.
	ListSections(ctx context.Context) ([]model.Section, error)
}
