package repository

import "context"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Repositories bundles the per-entity repositories that participate in a
// single logical store. Inside InTx all of them are bound to the same
// database transaction.
type Repositories struct {
	Records      RecordRepository
	Departments  DepartmentRepository
	Users        UserRepository
	History      HistoryRepository
	Receivements ReceivementRepository
	Sequences    SequenceRepository
	Tags         TagRepository
	Lookups      LookupRepository
	Attachments  AttachmentRepository
}

// Atomic executes fn with a Repositories value whose members all share one
// transaction. fn returning an error rolls everything back; multi-write
// operations (forward, confirm, close, reopen, create) must run through it so
// a history entry and its companion write land together or not at all.
type Atomic interface {
	InTx(ctx context.Context, fn func(Repositories) error) error
}
