package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordapi/internal/model"
	"recordapi/internal/service"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Create(ctx context.Context, in service.CreateRecordInput) (*model.Record, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) Get(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) List(ctx context.Context, q service.RecordListQuery) (*service.RecordListResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecordListResult), args.Error(1)
}

func (m *MockRecordService) Edit(ctx context.Context, id int64, in service.EditRecordInput) (*model.Record, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) SetSituation(ctx context.Context, id int64, target model.Situation) (*model.Record, error) {
	args := m.Called(ctx, id, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordService) HasSeiNumber(ctx context.Context, seiNumber string) (bool, error) {
	args := m.Called(ctx, seiNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordService) Departments(ctx context.Context, id int64) ([]model.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Department), args.Error(1)
}

func (m *MockRecordService) Tags(ctx context.Context, id int64) ([]model.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockRecordService) AddTag(ctx context.Context, id, tagID int64) (*model.Record, error) {
	args := m.Called(ctx, id, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) DepartmentRecords(ctx context.Context, departmentID int64) ([]model.Record, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}
