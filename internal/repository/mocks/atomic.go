package mocks

import (
	"context"

	"recordapi/internal/repository"
)

// Atomic is a test double for repository.Atomic that runs fn against a fixed
// Repositories value, with no real transaction underneath.
type Atomic struct {
	Repos repository.Repositories
	// Err, when set, is returned without invoking fn, simulating a failure
	// to open a transaction.
	Err error
}

func (a *Atomic) InTx(_ context.Context, fn func(repository.Repositories) error) error {
	if a.Err != nil {
		return a.Err
	}
	return fn(a.Repos)
}
