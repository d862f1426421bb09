package postgres

import (
	"context"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db DBTX
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db DBTX) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// FindByEmail fetches a user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id, name, email, department_id FROM users WHERE email = $1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email, &u.DepartmentID); err != nil {
		return nil, err
	}
	return &u, nil
}

// DepartmentPostgres is a PostgreSQL implementation of
// repository.DepartmentRepository.
type DepartmentPostgres struct {
	db DBTX
}

// NewDepartmentPostgres creates a new DepartmentPostgres repository.
func NewDepartmentPostgres(db DBTX) *DepartmentPostgres {
	return &DepartmentPostgres{db: db}
}

var _ repository.DepartmentRepository = (*DepartmentPostgres)(nil)

// FindByID fetches a department by id.
func (r *DepartmentPostgres) FindByID(ctx context.Context, id int64) (*model.Department, error) {
	const q = `SELECT id, name FROM departments WHERE id = $1`
	var d model.Department
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Name); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListRecords returns the records associated with the department.
func (r *DepartmentPostgres) ListRecords(ctx context.Context, departmentID int64) ([]model.Record, error) {
	q := `SELECT ` + recordColumns + `
		FROM records
		WHERE id IN (SELECT record_id FROM record_departments WHERE department_id = $1)
		ORDER BY register_number ASC`
	rows, err := r.db.QueryContext(ctx, q, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	return items, rows.Err()
}
