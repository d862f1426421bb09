package service

import (
	"context"
	"database/sql"
	"errors"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// transitionSituation is the record status state machine. It loads the record
// with its row locked, rejects the no-op transition, and persists the target
// situation. Any distinct situation may move to any other; close/reopen
// impose no predecessor check beyond that, mirroring the historical behavior
// of the system (a pending record can be "reopened" into running).
//
// It writes no history entry: the event semantics (closed, reopened, plain
// status change) differ by caller, so the caller appends its own entry inside
// the same transaction.
func transitionSituation(ctx context.Context, repos repository.Repositories, id int64, target model.Situation) (*model.Record, error) {
	rec, err := repos.Records.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if rec.Situation == target {
		return nil, ErrStatusAlreadySet
	}

	if err := repos.Records.UpdateSituation(ctx, id, target); err != nil {
		return nil, err
	}
	rec.Situation = target
	return rec, nil
}
