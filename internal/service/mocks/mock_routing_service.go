package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordapi/internal/model"
	"recordapi/internal/service"
)

type MockRoutingService struct {
	mock.Mock
}

func (m *MockRoutingService) Forward(ctx context.Context, in service.ForwardInput) (*service.ForwardResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ForwardResult), args.Error(1)
}

func (m *MockRoutingService) Close(ctx context.Context, in service.LifecycleInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockRoutingService) Reopen(ctx context.Context, in service.LifecycleInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockRoutingService) ConfirmReceivement(ctx context.Context, in service.ConfirmInput) (*model.History, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.History), args.Error(1)
}

func (m *MockRoutingService) History(ctx context.Context, recordID int64) ([]model.History, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.History), args.Error(1)
}

func (m *MockRoutingService) CurrentDepartment(ctx context.Context, recordID int64) (*service.CurrentDepartment, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CurrentDepartment), args.Error(1)
}
