package store

import (
	"context"

	"github.com/google/uuid"

	"mindlink-api/internal/model"
)

// Assigned reports whether the patient currently has this doctor assigned.
func (s *Store) Assigned(ctx context.Context, doctorID, patientID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE doctor_id=$1 AND patient_id=$2)`,
		doctorID, patientID,
	).Scan(&exists)
	return exists, err
}

// CreateAssignmentRequest records a patient asking a doctor to take them on.
// A second request for the same pair while one is pending is a no-op and
// returns the existing request id.
func (s *Store) CreateAssignmentRequest(ctx context.Context, doctorID, patientID string) (string, error) {
	var existing string
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM assignment_requests
		 WHERE doctor_id=$1 AND patient_id=$2 AND status='pending'`,
		doctorID, patientID,
	).Scan(&existing)
	if err == nil {
		return existing, nil
	}

	id := uuid.New().String()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO assignment_requests (id, doctor_id, patient_id, status) VALUES ($1,$2,$3,'pending')`,
		id, doctorID, patientID,
	)
	return id, err
}

func (s *Store) ListAssignmentRequests(ctx context.Context, doctorID string) ([]model.AssignmentRequest, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, doctor_id, patient_id, status, created_at
		 FROM assignment_requests
		 WHERE doctor_id=$1 AND status='pending'
		 ORDER BY created_at`, doctorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AssignmentRequest
	for rows.Next() {
		var r model.AssignmentRequest
		if err := rows.Scan(&r.ID, &r.DoctorID, &r.PatientID, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetAssignmentRequest(ctx context.Context, id string) (*model.AssignmentRequest, error) {
	r := &model.AssignmentRequest{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, doctor_id, patient_id, status, created_at
		 FROM assignment_requests WHERE id=$1`, id,
	).Scan(&r.ID, &r.DoctorID, &r.PatientID, &r.Status, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ApproveAssignmentRequest closes the request and creates the assignment in
// one transaction.
func (s *Store) ApproveAssignmentRequest(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var doctorID, patientID string
	err = tx.QueryRow(ctx,
		`UPDATE assignment_requests SET status='approved'
		 WHERE id=$1 AND status='pending'
		 RETURNING doctor_id, patient_id`, id,
	).Scan(&doctorID, &patientID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO assignments (doctor_id, patient_id) VALUES ($1,$2)
		 ON CONFLICT DO NOTHING`, doctorID, patientID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) RejectAssignmentRequest(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE assignment_requests SET status='rejected' WHERE id=$1 AND status='pending'`, id,
	)
	return err
}
