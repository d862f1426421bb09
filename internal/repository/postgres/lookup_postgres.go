package postgres

import (
	"context"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// TagPostgres is a PostgreSQL implementation of repository.TagRepository.
type TagPostgres struct {
	db DBTX
}

// NewTagPostgres creates a new TagPostgres repository.
func NewTagPostgres(db DBTX) *TagPostgres {
	return &TagPostgres{db: db}
}

var _ repository.TagRepository = (*TagPostgres)(nil)

// FindByID fetches a tag by id.
func (r *TagPostgres) FindByID(ctx context.Context, id int64) (*model.Tag, error) {
	const q = `SELECT id, name, color FROM tags WHERE id = $1`
	var t model.Tag
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.Color); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all tags.
func (r *TagPostgres) List(ctx context.Context) ([]model.Tag, error) {
	const q = `SELECT id, name, color FROM tags ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// LookupPostgres reads the static lookup tables (fields, sections).
type LookupPostgres struct {
	db DBTX
}

// NewLookupPostgres creates a new LookupPostgres repository.
func NewLookupPostgres(db DBTX) *LookupPostgres {
	return &LookupPostgres{db: db}
}

var _ repository.LookupRepository = (*LookupPostgres)(nil)

// ListFields returns the record form field descriptions.
func (r *LookupPostgres) ListFields(ctx context.Context) ([]model.Field, error) {
	const q = `SELECT name, description, created_by FROM fields ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := make([]model.Field, 0)
	for rows.Next() {
		var f model.Field
		if err := rows.Scan(&f.Name, &f.Description, &f.CreatedBy); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// ListSections returns the organizational sections.
func (r *LookupPostgres) ListSections(ctx context.Context) ([]model.Section, error) {
	const q = `SELECT id, name FROM sections ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := make([]model.Section, 0)
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}
