package model

import "time"

type User struct {
	ID             string
	Email          string
	PasswordHash   string
	Name           string
	Role           string // "doctor" or "patient"
	Specialization string // doctors only
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EditRequest is an outstanding reschedule proposal on a session.
// It is non-nil exactly while the session status is edit_requested.
type EditRequest struct {
	NewDate     string // YYYY-MM-DD
	NewTime     string // HH:MM, 24h
	RequestedBy string // role of the proposer
}

type Session struct {
	ID          string
	DoctorID    string
	PatientID   string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, 24h
	Status      string
	CreatedBy   string // role that created the session
	EditRequest *EditRequest
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AssignmentRequest struct {
	ID        string
	DoctorID  string
	PatientID string
	Status    string // pending, approved, rejected
	CreatedAt time.Time
}
