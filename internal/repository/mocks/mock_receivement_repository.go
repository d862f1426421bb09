package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordapi/internal/model"
)

type MockReceivementRepository struct {
	mock.Mock
}

func (m *MockReceivementRepository) Create(ctx context.Context, r *model.Receivement) (*model.Receivement, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receivement), args.Error(1)
}

func (m *MockReceivementRepository) FindByID(ctx context.Context, id int64) (*model.Receivement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receivement), args.Error(1)
}

func (m *MockReceivementRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Receivement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receivement), args.Error(1)
}

func (m *MockReceivementRepository) MarkReceived(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReceivementRepository) ListForRecord(ctx context.Context, recordID int64) ([]model.Receivement, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Receivement), args.Error(1)
}
