package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

func TestStore_InTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE records SET situation").
			WithArgs(int64(7), "running").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		store := NewStore(db)
		err = store.InTx(ctx, func(r repository.Repositories) error {
			return r.Records.UpdateSituation(ctx, 7, model.SituationRunning)
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		store := NewStore(db)
		wantErr := errors.New("business rule violated")
		err = store.InTx(ctx, func(r repository.Repositories) error {
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		store := NewStore(db)
		called := false
		err = store.InTx(ctx, func(r repository.Repositories) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
