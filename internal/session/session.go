// Package session owns the lifecycle of a therapy session shared by one
// doctor and one patient: creation, accept/reject, reschedule negotiation,
// and the join-window check. All state lives in the store; every transition
// is a read-compute-write over a single session record guarded by its
// version.
package session

import (
	"context"
	"time"

	"mindlink-api/internal/model"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusAccepted      Status = "accepted"
	StatusRejected      Status = "rejected"
	StatusEditRequested Status = "edit_requested"
)

type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// Counterpart is the other side of the doctor–patient pair.
func (r Role) Counterpart() Role {
	if r == RoleDoctor {
		return RolePatient
	}
	return RoleDoctor
}

type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Actor is the authenticated caller of an operation. It is passed
// explicitly into every call; the engine never reads ambient identity.
type Actor struct {
	ID   string
	Role Role
}

// Store is the persistence contract the engine runs against.
// UpdateSession must compare-and-swap on expectedVersion and report
// ErrConflict when the stored record moved since it was read.
type Store interface {
	CreateSession(ctx context.Context, s *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	UpdateSession(ctx context.Context, next *model.Session, expectedVersion int64) error
	ListSessionsFor(ctx context.Context, participantID string, role Role) ([]model.Session, error)
	Assigned(ctx context.Context, doctorID, patientID string) (bool, error)
}

// Clock supplies the current instant; injectable for tests.
type Clock func() time.Time

type Engine struct {
	store Store
	now   Clock
}

func NewEngine(store Store, clock Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{store: store, now: clock}
}

// participant reports whether the actor is the session's doctor or patient.
func participant(s *model.Session, a Actor) bool {
	switch a.Role {
	case RoleDoctor:
		return s.DoctorID == a.ID
	case RolePatient:
		return s.PatientID == a.ID
	}
	return false
}
