package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

var recordTestColumns = []string{
	"id", "register_number", "situation", "inclusion_date", "city", "state", "requester",
	"document_type", "document_number", "document_date", "deadline", "description", "sei_number",
	"receipt_form", "contact_info", "link", "key_words", "have_physical_object", "assigned_to",
}

func recordRow(rows *sqlmock.Rows, id int64, registerNumber, situation string) *sqlmock.Rows {
	return rows.AddRow(
		id, registerNumber, situation, time.Now().UTC(), "Recife", "PE", "city hall",
		"letter", "123", "2026-01-10", "", "request for documents", "SEI-123",
		"mail", "", "https://example.org", "urgent", false, "ana@gov.br",
	)
}

func TestRecordPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	rec := &model.Record{
		RegisterNumber: "000042/2026",
		Situation:      model.SituationPending,
		InclusionDate:  time.Now().UTC(),
		Requester:      "city hall",
		AssignedTo:     "ana@gov.br",
	}

	rows := recordRow(sqlmock.NewRows(recordTestColumns), 1, "000042/2026", "pending")

	mock.ExpectQuery("INSERT INTO records").
		WillReturnRows(rows)

	result, err := repo.Create(ctx, rec)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "000042/2026", result.RegisterNumber)
	assert.Equal(t, model.SituationPending, result.Situation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := recordRow(sqlmock.NewRows(recordTestColumns), 7, "000007/2026", "running")

		mock.ExpectQuery("SELECT (.+) FROM records WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		rec, err := repo.FindByID(ctx, 7)

		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, int64(7), rec.ID)
		assert.Equal(t, model.SituationRunning, rec.Situation)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM records WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		rec, err := repo.FindByID(ctx, 404)

		assert.Error(t, err)
		assert.True(t, IsNoRows(err))
		assert.Nil(t, rec)
	})

	t.Run("corrupt situation column", func(t *testing.T) {
		rows := recordRow(sqlmock.NewRows(recordTestColumns), 8, "000008/2026", "archived")

		mock.ExpectQuery("SELECT (.+) FROM records WHERE id = ?").
			WithArgs(int64(8)).
			WillReturnRows(rows)

		_, err := repo.FindByID(ctx, 8)
		assert.Error(t, err)
	})
}

func TestRecordPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(recordTestColumns)
		recordRow(rows, 1, "000001/2026", "pending")
		recordRow(rows, 2, "000002/2026", "running")
		mock.ExpectQuery("SELECT (.+) FROM records ORDER BY register_number ASC").
			WithArgs(30, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.RecordFilter{}, repository.PageQuery{Limit: 30, Offset: 0})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, "000001/2026", res.Items[0].RegisterNumber)
	})

	t.Run("filter by department and search", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records WHERE`).
			WithArgs(int64(5), "%sei%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := recordRow(sqlmock.NewRows(recordTestColumns), 3, "000003/2026", "running")
		mock.ExpectQuery("SELECT (.+) FROM records WHERE (.+) ORDER BY register_number ASC").
			WithArgs(int64(5), "%sei%", 10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx,
			repository.RecordFilter{DepartmentID: 5, Search: "sei"},
			repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 1, res.Total)
	})
}

func TestRecordPostgres_UpdateSituation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE records SET situation").
			WithArgs(int64(7), "finished").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateSituation(ctx, 7, model.SituationFinished)
		assert.NoError(t, err)
	})

	t.Run("missing row surfaces as no rows", func(t *testing.T) {
		mock.ExpectExec("UPDATE records SET situation").
			WithArgs(int64(404), "finished").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateSituation(ctx, 404, model.SituationFinished)
		assert.True(t, IsNoRows(err))
	})
}

func TestRecordPostgres_AttachDepartment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	// re-attach hits ON CONFLICT DO NOTHING and affects zero rows
	mock.ExpectExec("INSERT INTO record_departments").
		WithArgs(int64(7), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.AttachDepartment(ctx, 7, 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPostgres_SetTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM record_tags").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO record_tags").
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO record_tags").
		WithArgs(int64(7), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetTags(ctx, 7, []int64{1, 3})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
