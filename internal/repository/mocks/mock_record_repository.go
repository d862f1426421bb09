package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) FindBySeiNumber(ctx context.Context, seiNumber string) (*model.Record, error) {
	args := m.Called(ctx, seiNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) List(ctx context.Context, f repository.RecordFilter, pq repository.PageQuery) (*repository.PageResult[model.Record], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Record]), args.Error(1)
}

func (m *MockRecordRepository) Update(ctx context.Context, rec *model.Record) (*model.Record, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) UpdateSituation(ctx context.Context, id int64, s model.Situation) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockRecordRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepository) AttachDepartment(ctx context.Context, recordID, departmentID int64) error {
	args := m.Called(ctx, recordID, departmentID)
	return args.Error(0)
}

func (m *MockRecordRepository) ListDepartments(ctx context.Context, recordID int64) ([]model.Department, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Department), args.Error(1)
}

func (m *MockRecordRepository) SetTags(ctx context.Context, recordID int64, tagIDs []int64) error {
	args := m.Called(ctx, recordID, tagIDs)
	return args.Error(0)
}

func (m *MockRecordRepository) AddTag(ctx context.Context, recordID, tagID int64) error {
	args := m.Called(ctx, recordID, tagID)
	return args.Error(0)
}

func (m *MockRecordRepository) ListTags(ctx context.Context, recordID int64) ([]model.Tag, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}
