package repository

import (
	"context"

	"recordapi/internal/model"
)

// UserRepository reads actor identities. Users are reference data owned by an
// external system; this service never writes them.
type UserRepository interface {
	// FindByEmail returns the user registered under the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// DepartmentRepository reads organizational units (static reference data).
type DepartmentRepository interface {
	// FindByID returns a department by id.
	FindByID(ctx context.Context, id int64) (*model.Department, error)

	// ListRecords returns all records associated with the department.
	ListRecords(ctx context.Context, departmentID int64) ([]model.Record, error)
}
