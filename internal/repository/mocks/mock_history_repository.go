package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordapi/internal/model"
)

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, h *model.History) (*model.History, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.History), args.Error(1)
}

func (m *MockHistoryRepository) ListForRecord(ctx context.Context, recordID int64) ([]model.History, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.History), args.Error(1)
}

func (m *MockHistoryRepository) CountByForwarder(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}

func (m *MockHistoryRepository) CountByReceiver(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}
