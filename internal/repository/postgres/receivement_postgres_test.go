package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"recordapi/internal/model"
)

var receivementTestColumns = []string{"id", "record_id", "department_id", "received", "created_at", "updated_at"}

func TestReceivementPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReceivementPostgres(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(receivementTestColumns).
		AddRow(77, 10, 8, false, now, now)

	mock.ExpectQuery("INSERT INTO receivements").
		WithArgs(int64(10), int64(8), false).
		WillReturnRows(rows)

	rcv, err := repo.Create(ctx, &model.Receivement{RecordID: 10, DepartmentID: 8, Received: false})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), rcv.ID)
	assert.False(t, rcv.Received)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceivementPostgres_MarkReceived(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReceivementPostgres(db)
	ctx := context.Background()

	t.Run("flips the flag", func(t *testing.T) {
		mock.ExpectExec("UPDATE receivements SET received = TRUE").
			WithArgs(int64(77)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkReceived(ctx, 77)
		assert.NoError(t, err)
	})

	t.Run("missing row surfaces as no rows", func(t *testing.T) {
		mock.ExpectExec("UPDATE receivements SET received = TRUE").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkReceived(ctx, 404)
		assert.True(t, IsNoRows(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceivementPostgres_FindByIDForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReceivementPostgres(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(receivementTestColumns).
		AddRow(77, 10, 8, true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM receivements WHERE id = (.+) FOR UPDATE").
		WithArgs(int64(77)).
		WillReturnRows(rows)

	rcv, err := repo.FindByIDForUpdate(ctx, 77)

	assert.NoError(t, err)
	assert.True(t, rcv.Received)
	assert.NoError(t, mock.ExpectationsWereMet())
}
