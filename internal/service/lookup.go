package service

import (
	"context"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// UserInfo aggregates a user's identity with their routing activity.
type UserInfo struct {
	User         *model.User       `json:"user"`
	Department   *model.Department `json:"department"`
	Forwards     int               `json:"forwards"`
	Receivements int               `json:"receivements"`
}

// LookupService serves the static reference data and user info queries that
// accompany the routing workflow.
type LookupService interface {
	// Fields returns the record form field descriptions.
	Fields(ctx context.Context) ([]model.Field, error)

	// Sections returns the organizational sections.
	Sections(ctx context.Context) ([]model.Section, error)

	// ListTags returns the tag catalog.
	ListTags(ctx context.Context) ([]model.Tag, error)

	// UserInfo returns the user, their department, and how many forwards and
	// receivement confirmations they appear in.
	UserInfo(ctx context.Context, email string) (*UserInfo, error)
}

// lookupService is a concrete implementation of LookupService.
type lookupService struct {
	repos repository.Repositories
}

// NewLookupService constructs a new LookupService.
func NewLookupService(repos repository.Repositories) LookupService {
	return &lookupService{repos: repos}
}

func (s *lookupService) Fields(ctx context.Context) ([]model.Field, error) {
	return s.repos.Lookups.ListFields(ctx)
}

func (s *lookupService) Sections(ctx context.Context) ([]model.Section, error) {
	return s.repos.Lookups.ListSections(ctx)
}

func (s *lookupService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.repos.Tags.List(ctx)
}

func (s *lookupService) UserInfo(ctx context.Context, email string) (*UserInfo, error) {
	user, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapNoRows(err, ErrUserNotFound)
	}
	department, err := s.repos.Departments.FindByID(ctx, user.DepartmentID)
	if err != nil {
		return nil, mapNoRows(err, ErrDepartmentNotFound)
	}
	forwards, err := s.repos.History.CountByForwarder(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	receivements, err := s.repos.History.CountByReceiver(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	return &UserInfo{
		User:         user,
		Department:   department,
		Forwards:     forwards,
		Receivements: receivements,
	}, nil
}
