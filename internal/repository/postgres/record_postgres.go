package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
// It uses parameterized queries and contains no business logic.
type RecordPostgres struct {
	db DBTX
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db DBTX) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

const recordColumns = `id, register_number, situation, inclusion_date, city, state, requester,
	document_type, document_number, document_date, deadline, description, sei_number,
	receipt_form, contact_info, link, key_words, have_physical_object, assigned_to`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*model.Record, error) {
	var (
		rec       model.Record
		situation string
	)
	if err := row.Scan(
		&rec.ID,
		&rec.RegisterNumber,
		&situation,
		&rec.InclusionDate,
		&rec.City,
		&rec.State,
		&rec.Requester,
		&rec.DocumentType,
		&rec.DocumentNumber,
		&rec.DocumentDate,
		&rec.Deadline,
		&rec.Description,
		&rec.SeiNumber,
		&rec.ReceiptForm,
		&rec.ContactInfo,
		&rec.Link,
		&rec.KeyWords,
		&rec.HavePhysicalObject,
		&rec.AssignedTo,
	); err != nil {
		return nil, err
	}
	s, err := model.ParseSituation(situation)
	if err != nil {
		return nil, fmt.Errorf("scan record %d: %w", rec.ID, err)
	}
	rec.Situation = s
	return &rec, nil
}

// Create inserts a new record row and returns the stored record.
func (r *RecordPostgres) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	q := `
		INSERT INTO records (register_number, situation, inclusion_date, city, state, requester,
			document_type, document_number, document_date, deadline, description, sei_number,
			receipt_form, contact_info, link, key_words, have_physical_object, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + recordColumns
	row := r.db.QueryRowContext(ctx, q,
		rec.RegisterNumber,
		rec.Situation.String(),
		rec.InclusionDate,
		rec.City,
		rec.State,
		rec.Requester,
		rec.DocumentType,
		rec.DocumentNumber,
		rec.DocumentDate,
		rec.Deadline,
		rec.Description,
		rec.SeiNumber,
		rec.ReceiptForm,
		rec.ContactInfo,
		rec.Link,
		rec.KeyWords,
		rec.HavePhysicalObject,
		rec.AssignedTo,
	)
	return scanRecord(row)
}

// FindByID fetches a single record by id.
func (r *RecordPostgres) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	q := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`
	return scanRecord(r.db.QueryRowContext(ctx, q, id))
}

// FindByIDForUpdate fetches a record and locks its row until the enclosing
// transaction ends.
func (r *RecordPostgres) FindByIDForUpdate(ctx context.Context, id int64) (*model.Record, error) {
	q := `SELECT ` + recordColumns + ` FROM records WHERE id = $1 FOR UPDATE`
	return scanRecord(r.db.QueryRowContext(ctx, q, id))
}

// FindBySeiNumber fetches a record by its SEI number.
func (r *RecordPostgres) FindBySeiNumber(ctx context.Context, seiNumber string) (*model.Record, error) {
	q := `SELECT ` + recordColumns + ` FROM records WHERE sei_number = $1`
	return scanRecord(r.db.QueryRowContext(ctx, q, seiNumber))
}

// List returns records matching the filter using LIMIT/OFFSET pagination and
// a total count over the same filter.
func (r *RecordPostgres) List(ctx context.Context, f repository.RecordFilter, pq repository.PageQuery) (*repository.PageResult[model.Record], error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.DepartmentID != 0 {
		conds = append(conds, fmt.Sprintf(
			"id IN (SELECT record_id FROM record_departments WHERE department_id = %s)", arg(f.DepartmentID)))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(requester ILIKE %s OR description ILIKE %s OR sei_number ILIKE %s OR key_words ILIKE %s)", p, p, p, p))
	}
	if !f.From.IsZero() {
		conds = append(conds, fmt.Sprintf("inclusion_date >= %s", arg(f.From)))
	}
	if !f.To.IsZero() {
		conds = append(conds, fmt.Sprintf("inclusion_date <= %s", arg(f.To)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + recordColumns + ` FROM records` + where +
		fmt.Sprintf(" ORDER BY register_number ASC LIMIT %s OFFSET %s", arg(pq.Limit), arg(pq.Offset))
	rows, err := r.db.QueryContext(ctx, q, args...)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Record]{Items: items, Total: total}, nil
}

// Update rewrites the free descriptive fields of a record.
func (r *RecordPostgres) Update(ctx context.Context, rec *model.Record) (*model.Record, error) {
	q := `
		UPDATE records SET inclusion_date = $2, city = $3, state = $4, requester = $5,
			document_type = $6, document_number = $7, document_date = $8, deadline = $9,
			description = $10, sei_number = $11, receipt_form = $12, contact_info = $13,
			link = $14, key_words = $15, have_physical_object = $16
		WHERE id = $1
		RETURNING ` + recordColumns
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.InclusionDate,
		rec.City,
		rec.State,
		rec.Requester,
		rec.DocumentType,
		rec.DocumentNumber,
		rec.DocumentDate,
		rec.Deadline,
		rec.Description,
		rec.SeiNumber,
		rec.ReceiptForm,
		rec.ContactInfo,
		rec.Link,
		rec.KeyWords,
		rec.HavePhysicalObject,
	)
	return scanRecord(row)
}

// UpdateSituation persists a new situation for the record.
func (r *RecordPostgres) UpdateSituation(ctx context.Context, id int64, s model.Situation) error {
	const q = `UPDATE records SET situation = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, s.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count returns the total number of records.
func (r *RecordPostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM records`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// AttachDepartment adds a department to the record's association set.
// Re-attaching an already associated department is a no-op.
func (r *RecordPostgres) AttachDepartment(ctx context.Context, recordID, departmentID int64) error {
	const q = `
		INSERT INTO record_departments (record_id, department_id)
		VALUES ($1, $2)
		ON CONFLICT (record_id, department_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, recordID, departmentID)
	return err
}

// ListDepartments returns the record's departments in attachment order.
func (r *RecordPostgres) ListDepartments(ctx context.Context, recordID int64) ([]model.Department, error) {
	const q = `
		SELECT d.id, d.name
		FROM departments d
		JOIN record_departments rd ON rd.department_id = d.id
		WHERE rd.record_id = $1
		ORDER BY rd.attached_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deps := make([]model.Department, 0)
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

// SetTags replaces the record's tag set.
func (r *RecordPostgres) SetTags(ctx context.Context, recordID int64, tagIDs []int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM record_tags WHERE record_id = $1`, recordID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if err := r.AddTag(ctx, recordID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// AddTag attaches a tag to the record. Duplicate attachments are no-ops.
func (r *RecordPostgres) AddTag(ctx context.Context, recordID, tagID int64) error {
	const q = `
		INSERT INTO record_tags (record_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (record_id, tag_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, recordID, tagID)
	return err
}

// ListTags returns the tags attached to the record.
func (r *RecordPostgres) ListTags(ctx context.Context, recordID int64) ([]model.Tag, error) {
	const q = `
		SELECT t.id, t.name, t.color
		FROM tags t
		JOIN record_tags rt ON rt.tag_id = t.id
		WHERE rt.record_id = $1
		ORDER BY t.id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, recordID)
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
