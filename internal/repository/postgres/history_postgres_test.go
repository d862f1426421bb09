package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"recordapi/internal/model"
)

var historyTestColumns = []string{
	"id", "record_id", "event", "created_by", "forwarded_by", "closed_by", "reopened_by",
	"received_by", "origin_id", "origin_name", "destination_id", "destination_name", "reason", "created_at",
}

func TestHistoryPostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHistoryPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(historyTestColumns).
		AddRow(1, 10, "forwarded", "", "ana@gov.br", "", "", "", 5, "Protocol", 8, "Legal", "needs review", time.Now())

	mock.ExpectQuery("INSERT INTO history").
		WithArgs(int64(10), model.EventForwarded, "", "ana@gov.br", "", "", "", int64(5), "Protocol", int64(8), "Legal", "needs review").
		WillReturnRows(rows)

	entry, err := repo.Append(ctx, &model.History{
		RecordID:        10,
		Event:           model.EventForwarded,
		ForwardedBy:     "ana@gov.br",
		OriginID:        5,
		OriginName:      "Protocol",
		DestinationID:   8,
		DestinationName: "Legal",
		Reason:          "needs review",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, model.EventForwarded, entry.Event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryPostgres_ListForRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHistoryPostgres(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(historyTestColumns).
		AddRow(1, 10, "created", "ana@gov.br", "", "", "", "", 5, "Protocol", 0, "", "", base).
		AddRow(2, 10, "forwarded", "", "ana@gov.br", "", "", "", 5, "Protocol", 8, "Legal", "", base.Add(time.Hour)).
		AddRow(3, 10, "closed", "", "", "carla@gov.br", "", "", 0, "", 0, "", "done", base.Add(2*time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM history WHERE record_id = (.+) ORDER BY created_at ASC, id ASC").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	entries, err := repo.ListForRecord(ctx, 10)

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	// oldest first
	assert.Equal(t, model.EventCreated, entries[0].Event)
	assert.Equal(t, model.EventForwarded, entries[1].Event)
	assert.Equal(t, model.EventClosed, entries[2].Event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryPostgres_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewHistoryPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM history WHERE forwarded_by = ?`).
		WithArgs("ana@gov.br").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM history WHERE received_by = ?`).
		WithArgs("ana@gov.br").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	forwards, err := repo.CountByForwarder(ctx, "ana@gov.br")
	assert.NoError(t, err)
	assert.Equal(t, 12, forwards)

	received, err := repo.CountByReceiver(ctx, "ana@gov.br")
	assert.NoError(t, err)
	assert.Equal(t, 4, received)

	assert.NoError(t, mock.ExpectationsWereMet())
}
