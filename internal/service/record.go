package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// Link fields must look like an https URL; malformed links are rejected
// before any persistence occurs.
var linkPattern = regexp.MustCompile(`https://\w+`)

// RecordFields carries the free descriptive fields of a record. They are the
// only part of a record that edits may touch; register number and situation
// change through their own operations.
type RecordFields struct {
	City               string `json:"city"`
	State              string `json:"state"`
	Requester          string `json:"requester"`
	DocumentType       string `json:"document_type"`
	DocumentNumber     string `json:"document_number"`
	DocumentDate       string `json:"document_date"`
	Deadline           string `json:"deadline"`
	Description        string `json:"description"`
	SeiNumber          string `json:"sei_number"`
	ReceiptForm        string `json:"receipt_form"`
	ContactInfo        string `json:"contact_info"`
	Link               string `json:"link"`
	KeyWords           string `json:"key_words"`
	HavePhysicalObject bool   `json:"have_physical_object"`
}

// CreateRecordInput is the payload for record creation.
type CreateRecordInput struct {
	RecordFields
	CreatedBy string  `json:"created_by"`
	Tags      []int64 `json:"tags"`
}

// EditRecordInput is the payload for record edits.
type EditRecordInput struct {
	RecordFields
	InclusionDate time.Time `json:"inclusion_date"`
	Tags          []int64   `json:"tags"`
}

// RecordListQuery narrows and paginates record listings.
type RecordListQuery struct {
	Limit        int
	Offset       int
	DepartmentID int64
	Search       string
	From         time.Time
	To           time.Time
}

// RecordListResult is the service-level DTO for paginated records.
type RecordListResult struct {
	Items []model.Record `json:"data"`
	Total int            `json:"total"`
}

// RecordService defines the use cases for creating and maintaining records.
type RecordService interface {
	// Create validates the payload, allocates the next register number for
	// the current year, and creates the record in Pending situation with the
	// creator's department as origin plus a creation history entry.
	Create(ctx context.Context, in CreateRecordInput) (*model.Record, error)

	// Get returns a record with its tags, departments and receivements.
	Get(ctx context.Context, id int64) (*model.Record, error)

	// List returns records filtered and paginated.
	List(ctx context.Context, q RecordListQuery) (*RecordListResult, error)

	// Edit rewrites the record's free fields and tag set. It never touches
	// situation or register number.
	Edit(ctx context.Context, id int64, in EditRecordInput) (*model.Record, error)

	// SetSituation moves the record to the target situation through the
	// status state machine.
	SetSituation(ctx context.Context, id int64, target model.Situation) (*model.Record, error)

	// Count returns the total number of records.
	Count(ctx context.Context) (int, error)

	// HasSeiNumber reports whether any record carries the given SEI number.
	HasSeiNumber(ctx context.Context, seiNumber string) (bool, error)

	// Departments returns the departments the record has passed through.
	Departments(ctx context.Context, id int64) ([]model.Department, error)

	// Tags returns the record's tags.
	Tags(ctx context.Context, id int64) ([]model.Tag, error)

	// AddTag attaches an existing tag to the record.
	AddTag(ctx context.Context, id, tagID int64) (*model.Record, error)

	// DepartmentRecords returns every record associated with a department.
	DepartmentRecords(ctx context.Context, departmentID int64) ([]model.Record, error)
}

// recordService is a concrete implementation of RecordService.
type recordService struct {
	repos  repository.Repositories
	atomic repository.Atomic
	now    func() time.Time
}

// NewRecordService constructs a new RecordService.
func NewRecordService(repos repository.Repositories, atomic repository.Atomic) RecordService {
	return &recordService{repos: repos, atomic: atomic, now: time.Now}
}

func (s *recordService) Create(ctx context.Context, in CreateRecordInput) (*model.Record, error) {
	if in.Link != "" && !linkPattern.MatchString(in.Link) {
		return nil, ErrInvalidLink
	}

	user, err := s.repos.Users.FindByEmail(ctx, in.CreatedBy)
	if err != nil {
		return nil, mapNoRows(err, ErrUserNotFound)
	}
	department, err := s.repos.Departments.FindByID(ctx, user.DepartmentID)
	if err != nil {
		return nil, mapNoRows(err, ErrDepartmentNotFound)
	}

	now := s.now().UTC()

	var created *model.Record
	err = s.atomic.InTx(ctx, func(r repository.Repositories) error {
		seq, err := r.Sequences.Next(ctx, now.Year())
		if err != nil {
			return err
		}

		rec := &model.Record{
			RegisterNumber:     model.FormatRegisterNumber(seq, now.Year()),
			Situation:          model.SituationPending,
			InclusionDate:      now,
			City:               in.City,
			State:              in.State,
			Requester:          in.Requester,
			DocumentType:       in.DocumentType,
			DocumentNumber:     in.DocumentNumber,
			DocumentDate:       in.DocumentDate,
			Deadline:           in.Deadline,
			Description:        in.Description,
			SeiNumber:          in.SeiNumber,
			ReceiptForm:        in.ReceiptForm,
			ContactInfo:        in.ContactInfo,
			Link:               in.Link,
			KeyWords:           in.KeyWords,
			HavePhysicalObject: in.HavePhysicalObject,
			AssignedTo:         user.Email,
		}
		created, err = r.Records.Create(ctx, rec)
		if err != nil {
			return err
		}

		if err := r.Records.AttachDepartment(ctx, created.ID, department.ID); err != nil {
			return err
		}
		if len(in.Tags) > 0 {
			if err := r.Records.SetTags(ctx, created.ID, in.Tags); err != nil {
				return err
			}
		}

		_, err = r.History.Append(ctx, &model.History{
			RecordID:   created.ID,
			Event:      model.EventCreated,
			CreatedBy:  user.Email,
			OriginID:   department.ID,
			OriginName: department.Name,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.hydrate(ctx, created)
}

// hydrate loads a record's associations for the full API representation.
func (s *recordService) hydrate(ctx context.Context, rec *model.Record) (*model.Record, error) {
	tags, err := s.repos.Records.ListTags(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	departments, err := s.repos.Records.ListDepartments(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	receivements, err := s.repos.Receivements.ListForRecord(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Tags = tags
	rec.Departments = departments
	rec.Receivements = receivements
	return rec, nil
}

func (s *recordService) Get(ctx context.Context, id int64) (*model.Record, error) {
	rec, err := s.repos.Records.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}
	return s.hydrate(ctx, rec)
}

func (s *recordService) List(ctx context.Context, q RecordListQuery) (*RecordListResult, error) {
	if q.Limit <= 0 {
		q.Limit = 30
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	res, err := s.repos.Records.List(ctx, repository.RecordFilter{
		DepartmentID: q.DepartmentID,
		Search:       q.Search,
		From:         q.From,
		To:           q.To,
	}, repository.PageQuery{Limit: q.Limit, Offset: q.Offset})
	if err != nil {
		return nil, err
	}
	return &RecordListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *recordService) Edit(ctx context.Context, id int64, in EditRecordInput) (*model.Record, error) {
	if in.Link != "" && !linkPattern.MatchString(in.Link) {
		return nil, ErrInvalidLink
	}

	var edited *model.Record
	err := s.atomic.InTx(ctx, func(r repository.Repositories) error {
		rec, err := r.Records.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapNoRows(err, ErrRecordNotFound)
		}

		rec.InclusionDate = in.InclusionDate
		rec.City = in.City
		rec.State = in.State
		rec.Requester = in.Requester
		rec.DocumentType = in.DocumentType
		rec.DocumentNumber = in.DocumentNumber
		rec.DocumentDate = in.DocumentDate
		rec.Deadline = in.Deadline
		rec.Description = in.Description
		rec.SeiNumber = in.SeiNumber
		rec.ReceiptForm = in.ReceiptForm
		rec.ContactInfo = in.ContactInfo
		rec.Link = in.Link
		rec.KeyWords = in.KeyWords
		rec.HavePhysicalObject = in.HavePhysicalObject

		edited, err = r.Records.Update(ctx, rec)
		if err != nil {
			return err
		}
		return r.Records.SetTags(ctx, id, in.Tags)
	})
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, edited)
}

func (s *recordService) SetSituation(ctx context.Context, id int64, target model.Situation) (*model.Record, error) {
	if !target.Valid() {
		return nil, ErrInvalidSituation
	}

	var rec *model.Record
	err := s.atomic.InTx(ctx, func(r repository.Repositories) error {
		var err error
		rec, err = transitionSituation(ctx, r, id, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Count(ctx context.Context) (int, error) {
	return s.repos.Records.Count(ctx)
}

func (s *recordService) HasSeiNumber(ctx context.Context, seiNumber string) (bool, error) {
	if seiNumber == "" {
		return false, ErrEmptySeiNumber
	}
	_, err := s.repos.Records.FindBySeiNumber(ctx, seiNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *recordService) Departments(ctx context.Context, id int64) ([]model.Department, error) {
	if _, err := s.repos.Records.FindByID(ctx, id); err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}
	return s.repos.Records.ListDepartments(ctx, id)
}

func (s *recordService) Tags(ctx context.Context, id int64) ([]model.Tag, error) {
	if _, err := s.repos.Records.FindByID(ctx, id); err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}
	return s.repos.Records.ListTags(ctx, id)
}

func (s *recordService) AddTag(ctx context.Context, id, tagID int64) (*model.Record, error) {
	rec, err := s.repos.Records.FindByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}
	if _, err := s.repos.Tags.FindByID(ctx, tagID); err != nil {
		return nil, mapNoRows(err, ErrTagNotFound)
	}
	if err := s.repos.Records.AddTag(ctx, id, tagID); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) DepartmentRecords(ctx context.Context, departmentID int64) ([]model.Record, error) {
	if _, err := s.repos.Departments.FindByID(ctx, departmentID); err != nil {
		return nil, mapNoRows(err, ErrDepartmentNotFound)
	}
	return s.repos.Departments.ListRecords(ctx, departmentID)
}

// mapNoRows translates the store's empty-result sentinel to a typed service
// error; other failures pass through untouched and surface as internal.
func mapNoRows(err error, notFound *Error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}
