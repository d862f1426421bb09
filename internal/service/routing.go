package service

import (
	"context"

	"recordapi/internal/model"
	"recordapi/internal/repository"
)

// ForwardInput describes a forward action.
type ForwardInput struct {
	RecordID      int64
	OriginID      int64
	DestinationID int64
	ForwardedBy   string
	Reason        string
}

// ForwardResult names who forwarded, from where, to where.
type ForwardResult struct {
	ForwardedBy     string `json:"forwarded_by"`
	ForwardedByName string `json:"forwarded_by_name"`
	ForwardedFrom   string `json:"forwarded_from"`
	ForwardedTo     string `json:"forwarded_to"`
}

// LifecycleInput carries the actor and reason required by close and reopen.
type LifecycleInput struct {
	RecordID int64
	Actor    string
	Reason   string
}

// ConfirmInput identifies the receivement being acknowledged.
type ConfirmInput struct {
	RecordID      int64
	ReceivementID int64
	DepartmentID  int64
	ReceivedBy    string
}

// CurrentDepartment is where a record sits right now, derived from the last
// history entry that names a department.
type CurrentDepartment struct {
	ID   int64  `json:"current_department"`
	Name string `json:"current_department_name"`
}

// RoutingService governs how records move between departments: forwarding,
// receivement confirmation, close/reopen, and provenance queries. Every
// mutating operation runs in a single transaction with the record row locked,
// so a forward always lands exactly one receivement and one history entry, or
// neither.
type RoutingService interface {
	// Forward moves a record from its declared origin to a destination
	// department, leaving a pending receivement for the destination to
	// confirm. The actor must belong to the declared origin.
	Forward(ctx context.Context, in ForwardInput) (*ForwardResult, error)

	// Close transitions the record to Finished and appends a closed entry.
	Close(ctx context.Context, in LifecycleInput) error

	// Reopen transitions the record to Running and appends a reopened entry.
	Reopen(ctx context.Context, in LifecycleInput) error

	// ConfirmReceivement acknowledges a forward on behalf of the receiving
	// department. Confirming twice fails; the flag never flips back.
	ConfirmReceivement(ctx context.Context, in ConfirmInput) (*model.History, error)

	// History returns the record's audit trail oldest first.
	History(ctx context.Context, recordID int64) ([]model.History, error)

	// CurrentDepartment derives the record's present location from its
	// history.
	CurrentDepartment(ctx context.Context, recordID int64) (*CurrentDepartment, error)
}

// routingService is a concrete implementation of RoutingService.
type routingService struct {
	repos  repository.Repositories
	atomic repository.Atomic
}

// NewRoutingService constructs a new RoutingService.
func NewRoutingService(repos repository.Repositories, atomic repository.Atomic) RoutingService {
	return &routingService{repos: repos, atomic: atomic}
}

func (s *routingService) Forward(ctx context.Context, in ForwardInput) (*ForwardResult, error) {
	if in.OriginID <= 0 || in.DestinationID <= 0 {
		return nil, ErrInvalidID
	}

	var result *ForwardResult
	err := s.atomic.InTx(ctx, func(r repository.Repositories) error {
		rec, err := r.Records.FindByIDForUpdate(ctx, in.RecordID)
		if err != nil {
			return mapNoRows(err, ErrRecordNotFound)
		}
		origin, err := r.Departments.FindByID(ctx, in.OriginID)
		if err != nil {
			return mapNoRows(err, ErrDepartmentNotFound)
		}
		destination, err := r.Departments.FindByID(ctx, in.DestinationID)
		if err != nil {
			return mapNoRows(err, ErrDepartmentNotFound)
		}
		user, err := r.Users.FindByEmail(ctx, in.ForwardedBy)
		if err != nil {
			return mapNoRows(err, ErrUserNotFound)
		}
		if user.DepartmentID != origin.ID {
			return ErrDepartmentMismatch
		}

		if _, err := r.Receivements.Create(ctx, &model.Receivement{
			RecordID:     rec.ID,
			DepartmentID: destination.ID,
			Received:     false,
		}); err != nil {
			return err
		}
		if err := r.Records.AttachDepartment(ctx, rec.ID, destination.ID); err != nil {
			return err
		}
		if _, err := r.History.Append(ctx, &model.History{
			RecordID:        rec.ID,
			Event:           model.EventForwarded,
			ForwardedBy:     user.Email,
			OriginID:        origin.ID,
			OriginName:      origin.Name,
			DestinationID:   destination.ID,
			DestinationName: destination.Name,
			Reason:          in.Reason,
		}); err != nil {
			return err
		}

		result = &ForwardResult{
			ForwardedBy:     user.Email,
			ForwardedByName: user.Name,
			ForwardedFrom:   origin.Name,
			ForwardedTo:     destination.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *routingService) Close(ctx context.Context, in LifecycleInput) error {
	return s.lifecycle(ctx, in, model.SituationFinished, model.EventClosed)
}

func (s *routingService) Reopen(ctx context.Context, in LifecycleInput) error {
	return s.lifecycle(ctx, in, model.SituationRunning, model.EventReopened)
}

// lifecycle is the shared close/reopen path: validate reason and actor,
// resolve the actor before any write, run the state machine, and append the
// event entry within the same transaction.
func (s *routingService) lifecycle(ctx context.Context, in LifecycleInput, target model.Situation, event model.HistoryEvent) error {
	if in.Reason == "" {
		return ErrMissingReason
	}
	if in.Actor == "" {
		return ErrMissingActor
	}

	return s.atomic.InTx(ctx, func(r repository.Repositories) error {
		user, err := r.Users.FindByEmail(ctx, in.Actor)
		if err != nil {
			return mapNoRows(err, ErrUserNotFound)
		}

		rec, err := transitionSituation(ctx, r, in.RecordID, target)
		if err != nil {
			return err
		}

		h := &model.History{
			RecordID: rec.ID,
			Event:    event,
			Reason:   in.Reason,
		}
		switch event {
		case model.EventClosed:
			h.ClosedBy = user.Email
		case model.EventReopened:
			h.ReopenedBy = user.Email
		}
		_, err = r.History.Append(ctx, h)
		return err
	})
}

func (s *routingService) ConfirmReceivement(ctx context.Context, in ConfirmInput) (*model.History, error) {
	var entry *model.History
	err := s.atomic.InTx(ctx, func(r repository.Repositories) error {
		if _, err := r.Records.FindByIDForUpdate(ctx, in.RecordID); err != nil {
			return mapNoRows(err, ErrRecordNotFound)
		}
		user, err := r.Users.FindByEmail(ctx, in.ReceivedBy)
		if err != nil {
			return mapNoRows(err, ErrUserNotFound)
		}
		receivement, err := r.Receivements.FindByIDForUpdate(ctx, in.ReceivementID)
		if err != nil {
			return mapNoRows(err, ErrReceivementNotFound)
		}
		department, err := r.Departments.FindByID(ctx, in.DepartmentID)
		if err != nil {
			return mapNoRows(err, ErrDepartmentNotFound)
		}

		if receivement.Received {
			return ErrAlreadyConfirmed
		}
		if err := r.Receivements.MarkReceived(ctx, receivement.ID); err != nil {
			return err
		}

		entry, err = r.History.Append(ctx, &model.History{
			RecordID:   in.RecordID,
			Event:      model.EventReceived,
			ReceivedBy: user.Email,
			OriginName: department.Name,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *routingService) History(ctx context.Context, recordID int64) ([]model.History, error) {
	if _, err := s.repos.Records.FindByID(ctx, recordID); err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}
	return s.repos.History.ListForRecord(ctx, recordID)
}

func (s *routingService) CurrentDepartment(ctx context.Context, recordID int64) (*CurrentDepartment, error) {
	if _, err := s.repos.Records.FindByID(ctx, recordID); err != nil {
		return nil, mapNoRows(err, ErrRecordNotFound)
	}

	entries, err := s.repos.History.ListForRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrHistoryEmpty
	}

	// Closed/reopened/received entries carry no department ids, so walk
	// backwards to the newest entry that names one. The destination of the
	// latest forward wins; before any forward the creation origin wins.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].DestinationID != 0 {
			return &CurrentDepartment{ID: entries[i].DestinationID, Name: entries[i].DestinationName}, nil
		}
		if entries[i].OriginID != 0 {
			return &CurrentDepartment{ID: entries[i].OriginID, Name: entries[i].OriginName}, nil
		}
	}
	return nil, ErrHistoryEmpty
}
