package session_test

import (
	"testing"
	"time"

	"mindlink-api/internal/model"
	"mindlink-api/internal/session"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.Local)
}

func acceptedAt(date, tod string) *model.Session {
	return &model.Session{
		ID:        "sess-1",
		Date:      date,
		Time:      tod,
		Status:    string(session.StatusAccepted),
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
	}
}

func TestJoinEligibleWindow(t *testing.T) {
	s := acceptedAt("2026-03-14", "10:00")

	tests := []struct {
		name     string
		now      time.Time
		eligible bool
	}{
		{"11 minutes early", at(9, 49), false},
		{"10 minutes early, inclusive", at(9, 50), true},
		{"9 minutes early", at(9, 51), true},
		{"at start", at(10, 0), true},
		{"29 minutes late", at(10, 29), true},
		{"30 minutes late, inclusive", at(10, 30), true},
		{"31 minutes late", at(10, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := session.JoinEligible(s, tt.now); got != tt.eligible {
				t.Errorf("JoinEligible at %s = %v, want %v", tt.now.Format("15:04"), got, tt.eligible)
			}
		})
	}
}

func TestJoinEligibleRequiresAccepted(t *testing.T) {
	now := at(10, 0)
	for _, st := range []session.Status{session.StatusPending, session.StatusRejected, session.StatusEditRequested} {
		s := acceptedAt("2026-03-14", "10:00")
		s.Status = string(st)
		if session.JoinEligible(s, now) {
			t.Errorf("status %s should not be joinable", st)
		}
	}
}

func TestJoinEligibleRequiresToday(t *testing.T) {
	now := at(10, 0)
	if session.JoinEligible(acceptedAt("2026-03-15", "10:00"), now) {
		t.Error("tomorrow's session should not be joinable")
	}
	if session.JoinEligible(acceptedAt("2026-03-13", "10:00"), now) {
		t.Error("yesterday's session should not be joinable")
	}
}

func TestExpired(t *testing.T) {
	s := acceptedAt("2026-03-14", "10:00")

	if session.Expired(s, at(10, 30)) {
		t.Error("10:30 is still inside the window")
	}
	if !session.Expired(s, at(10, 31)) {
		t.Error("10:31 is past the window")
	}

	// Expiry is status-independent.
	s.Status = string(session.StatusPending)
	if !session.Expired(s, at(10, 31)) {
		t.Error("pending sessions still expire")
	}
}

func TestMalformedTimeNeverJoinable(t *testing.T) {
	s := acceptedAt("2026-03-14", "not-a-time")
	if session.JoinEligible(s, at(10, 0)) {
		t.Error("malformed time must not be joinable")
	}
	if session.Expired(s, at(23, 59)) {
		t.Error("malformed time must not report expired")
	}
}
