package session

import (
	"context"

	"github.com/google/uuid"

	"mindlink-api/internal/model"
	"mindlink-api/internal/schedule"
)

// Create books a new session between the actor and the counterparty and
// leaves it pending. The counterparty id is interpreted by the actor's role:
// a patient supplies a doctor id and vice versa, so neither side can forge
// the pair. Patients cannot book a slot in the past; doctors can, which
// mirrors the reference behavior.
func (e *Engine) Create(ctx context.Context, actor Actor, counterpartyID, date, tod string) (*model.Session, error) {
	if !actor.Role.Valid() {
		return nil, invalidf("unknown role %q", actor.Role)
	}
	if actor.ID == "" || counterpartyID == "" {
		return nil, invalidf("doctor and patient ids are required")
	}

	start, err := schedule.StartOf(date, tod)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	doctorID, patientID := actor.ID, counterpartyID
	if actor.Role == RolePatient {
		doctorID, patientID = counterpartyID, actor.ID
		if start.Before(e.now()) {
			return nil, invalidf("cannot book a past date/time")
		}
	}

	ok, err := e.store.Assigned(ctx, doctorID, patientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidf("patient is not assigned to this doctor")
	}

	s := &model.Session{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Time:      tod,
		Status:    string(StatusPending),
		CreatedBy: string(actor.Role),
	}
	if err := e.store.CreateSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the session if the actor participates in it. Non-participants
// get not-found rather than a hint that the id exists.
func (e *Engine) Get(ctx context.Context, actor Actor, id string) (*model.Session, error) {
	if id == "" {
		return nil, invalidf("session id is required")
	}
	s, err := e.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if !participant(s, actor) {
		return nil, ErrNotFound
	}
	return s, nil
}

// List returns every session the actor participates in, by role.
func (e *Engine) List(ctx context.Context, actor Actor) ([]model.Session, error) {
	if !actor.Role.Valid() {
		return nil, invalidf("unknown role %q", actor.Role)
	}
	return e.store.ListSessionsFor(ctx, actor.ID, actor.Role)
}

// UpdateStatus accepts or rejects a pending session. Only the counterparty
// of whoever created the session may decide it; rejected is terminal.
func (e *Engine) UpdateStatus(ctx context.Context, actor Actor, id string, next Status) (*model.Session, error) {
	if next != StatusAccepted && next != StatusRejected {
		return nil, invalidf("status must be %q or %q", StatusAccepted, StatusRejected)
	}

	s, err := e.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if Status(s.Status) != StatusPending {
		return nil, &IllegalStateError{Op: "accept or reject", State: Status(s.Status)}
	}
	if string(actor.Role) == s.CreatedBy {
		return nil, &UnauthorizedError{Reason: "only the counterparty can accept or reject this session"}
	}

	upd := *s
	upd.Status = string(next)
	if err := e.store.UpdateSession(ctx, &upd, s.Version); err != nil {
		return nil, err
	}
	return &upd, nil
}

// RequestEdit proposes a new date/time for a pending or accepted session.
// An outstanding proposal must be decided before another can be made.
func (e *Engine) RequestEdit(ctx context.Context, actor Actor, id, newDate, newTime string) (*model.Session, error) {
	start, err := schedule.StartOf(newDate, newTime)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if actor.Role == RolePatient && start.Before(e.now()) {
		return nil, invalidf("cannot reschedule to a past date/time")
	}

	s, err := e.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	st := Status(s.Status)
	if st != StatusPending && st != StatusAccepted {
		return nil, &IllegalStateError{Op: "request an edit on", State: st}
	}

	upd := *s
	upd.Status = string(StatusEditRequested)
	upd.EditRequest = &model.EditRequest{
		NewDate:     newDate,
		NewTime:     newTime,
		RequestedBy: string(actor.Role),
	}
	if err := e.store.UpdateSession(ctx, &upd, s.Version); err != nil {
		return nil, err
	}
	return &upd, nil
}

// DecideEdit resolves an outstanding reschedule proposal. Accepting moves
// the session to the proposed date/time; rejecting keeps the original slot.
// Either way the session ends up accepted with the proposal cleared. The
// proposer cannot decide their own proposal.
func (e *Engine) DecideEdit(ctx context.Context, actor Actor, id string, decision Decision) (*model.Session, error) {
	if decision != DecisionAccept && decision != DecisionReject {
		return nil, invalidf("decision must be %q or %q", DecisionAccept, DecisionReject)
	}

	s, err := e.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if Status(s.Status) != StatusEditRequested || s.EditRequest == nil {
		return nil, &IllegalStateError{Op: "decide an edit on", State: Status(s.Status)}
	}
	if string(actor.Role) == s.EditRequest.RequestedBy {
		return nil, &UnauthorizedError{Reason: "the requester cannot decide their own edit"}
	}

	upd := *s
	if decision == DecisionAccept {
		upd.Date = s.EditRequest.NewDate
		upd.Time = s.EditRequest.NewTime
	}
	upd.Status = string(StatusAccepted)
	upd.EditRequest = nil
	if err := e.store.UpdateSession(ctx, &upd, s.Version); err != nil {
		return nil, err
	}
	return &upd, nil
}

// JoinState describes whether a participant may enter a session right now.
type JoinState struct {
	Eligible bool
	Expired  bool
}

// Join evaluates the join window for the actor's session at the current
// instant. It never mutates state.
func (e *Engine) Join(ctx context.Context, actor Actor, id string) (JoinState, *model.Session, error) {
	s, err := e.Get(ctx, actor, id)
	if err != nil {
		return JoinState{}, nil, err
	}
	now := e.now()
	return JoinState{
		Eligible: JoinEligible(s, now),
		Expired:  Expired(s, now),
	}, s, nil
}
