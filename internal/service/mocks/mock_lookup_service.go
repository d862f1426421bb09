package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordapi/internal/model"
	"recordapi/internal/service"
)

type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Fields(ctx context.Context) ([]model.Field, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Field), args.Error(1)
}

func (m *MockLookupService) Sections(ctx context.Context) ([]model.Section, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Section), args.Error(1)
}

func (m *MockLookupService) ListTags(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockLookupService) UserInfo(ctx context.Context, email string) (*service.UserInfo, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserInfo), args.Error(1)
}
