package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSequencePostgres_Next(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSequencePostgres(db)
	ctx := context.Background()

	t.Run("first allocation of a year starts at one", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO record_sequences").
			WithArgs(2027).
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1))

		seq, err := repo.Next(ctx, 2027)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), seq)
	})

	t.Run("existing year increments", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO record_sequences").
			WithArgs(2026).
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(42))

		seq, err := repo.Next(ctx, 2026)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), seq)
	})

	t.Run("counters are independent per year", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO record_sequences").
			WithArgs(2026).
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(43))
		mock.ExpectQuery("INSERT INTO record_sequences").
			WithArgs(2027).
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(2))

		seq26, err := repo.Next(ctx, 2026)
		assert.NoError(t, err)
		seq27, err := repo.Next(ctx, 2027)
		assert.NoError(t, err)
		assert.Equal(t, int64(43), seq26)
		assert.Equal(t, int64(2), seq27)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO record_sequences").
			WithArgs(2026).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Next(ctx, 2026)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
