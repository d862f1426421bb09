package repository

import (
	"context"
	"time"

	"recordapi/internal/model"
)

// RecordFilter narrows List queries. Zero values mean "no constraint".
type RecordFilter struct {
	DepartmentID int64
	Search       string
	From         time.Time
	To           time.Time
}

// RecordRepository defines data access for records using SQL queries only.
// No business logic here — strictly persistence operations.
type RecordRepository interface {
	// Create inserts a new record row. The caller provides register number,
	// situation and inclusion date; the database assigns the id.
	Create(ctx context.Context, rec *model.Record) (*model.Record, error)

	// FindByID returns a record by its id.
	FindByID(ctx context.Context, id int64) (*model.Record, error)

	// FindByIDForUpdate returns a record by id with its row locked for the
	// duration of the surrounding transaction. Serializes lifecycle
	// operations on the same record.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Record, error)

	// FindBySeiNumber returns the record carrying the given SEI number.
	FindBySeiNumber(ctx context.Context, seiNumber string) (*model.Record, error)

	// List returns a filtered, paginated page of records plus the total count.
	List(ctx context.Context, f RecordFilter, pq PageQuery) (*PageResult[model.Record], error)

	// Update rewrites the record's free descriptive fields. It never touches
	// register_number or situation.
	Update(ctx context.Context, rec *model.Record) (*model.Record, error)

	// UpdateSituation persists a new situation for the record.
	UpdateSituation(ctx context.Context, id int64, s model.Situation) error

	// Count returns the total number of records.
	Count(ctx context.Context) (int, error)

	// AttachDepartment adds a department to the record's association. The
	// association accumulates; departments are never detached.
	AttachDepartment(ctx context.Context, recordID, departmentID int64) error

	// ListDepartments returns the departments associated with the record, in
	// attachment order.
	ListDepartments(ctx context.Context, recordID int64) ([]model.Department, error)

	// SetTags replaces the record's tag set.
	SetTags(ctx context.Context, recordID int64, tagIDs []int64) error

	// AddTag attaches a single tag to the record.
	AddTag(ctx context.Context, recordID, tagID int64) error

	// ListTags returns the tags attached to the record.
	ListTags(ctx context.Context, recordID int64) ([]model.Tag, error)
}
