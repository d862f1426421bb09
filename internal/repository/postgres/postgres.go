package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recordapi/internal/repository"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository in this package runs against it so the same implementation
// serves both pooled and transactional access.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the PostgreSQL repositories and implements repository.Atomic.
type Store struct {
	db *sql.DB
	repository.Repositories
}

// NewStore creates the repository set over a live connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, Repositories: newRepositories(db)}
}

var _ repository.Atomic = (*Store)(nil)

func newRepositories(db DBTX) repository.Repositories {
	return repository.Repositories{
		Records:      NewRecordPostgres(db),
		Departments:  NewDepartmentPostgres(db),
		Users:        NewUserPostgres(db),
		History:      NewHistoryPostgres(db),
		Receivements: NewReceivementPostgres(db),
		Sequences:    NewSequencePostgres(db),
		Tags:         NewTagPostgres(db),
		Lookups:      NewLookupPostgres(db),
		Attachments:  NewAttachmentPostgres(db),
	}
}

// InTx runs fn with all repositories bound to one transaction. A non-nil
// error from fn rolls the transaction back and is returned unchanged.
func (s *Store) InTx(ctx context.Context, fn func(repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w; rollback failed: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// IsNoRows reports whether err is the driver's empty-result sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
