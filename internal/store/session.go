package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"mindlink-api/internal/model"
	"mindlink-api/internal/session"
)

func (s *Store) CreateSession(ctx context.Context, sess *model.Session) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO sessions (id, doctor_id, patient_id, session_date, session_time, status, created_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING version, created_at, updated_at`,
		sess.ID, sess.DoctorID, sess.PatientID, sess.Date, sess.Time, sess.Status, sess.CreatedBy,
	).Scan(&sess.Version, &sess.CreatedAt, &sess.UpdatedAt)
}

func (s *Store) GetSession(ctx context.Context, id string) (*model.Session, error) {
	sess := &model.Session{}
	var editDate, editTime, editBy *string
	err := s.pool.QueryRow(ctx,
		`SELECT id, doctor_id, patient_id, session_date, session_time, status, created_by,
		        edit_new_date, edit_new_time, edit_requested_by, version, created_at, updated_at
		 FROM sessions WHERE id = $1`, id,
	).Scan(&sess.ID, &sess.DoctorID, &sess.PatientID, &sess.Date, &sess.Time, &sess.Status,
		&sess.CreatedBy, &editDate, &editTime, &editBy, &sess.Version, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if editDate != nil && editTime != nil && editBy != nil {
		sess.EditRequest = &model.EditRequest{NewDate: *editDate, NewTime: *editTime, RequestedBy: *editBy}
	}
	return sess, nil
}

// UpdateSession writes the mutable fields of a session, guarded by the
// version read earlier. A stale version loses the race and gets ErrConflict
// so the caller can refetch instead of silently overwriting.
func (s *Store) UpdateSession(ctx context.Context, next *model.Session, expectedVersion int64) error {
	var editDate, editTime, editBy *string
	if er := next.EditRequest; er != nil {
		editDate, editTime, editBy = &er.NewDate, &er.NewTime, &er.RequestedBy
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE sessions
		 SET session_date=$1, session_time=$2, status=$3,
		     edit_new_date=$4, edit_new_time=$5, edit_requested_by=$6,
		     version=version+1, updated_at=NOW()
		 WHERE id=$7 AND version=$8`,
		next.Date, next.Time, next.Status, editDate, editTime, editBy,
		next.ID, expectedVersion,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		next.Version = expectedVersion + 1
		return nil
	}

	// zero rows: either the id is gone or somebody else won the write
	var exists bool
	if err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM sessions WHERE id=$1)`, next.ID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return session.ErrNotFound
	}
	return session.ErrConflict
}

func (s *Store) ListSessionsFor(ctx context.Context, participantID string, role session.Role) ([]model.Session, error) {
	col := "patient_id"
	if role == session.RoleDoctor {
		col = "doctor_id"
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, doctor_id, patient_id, session_date, session_time, status, created_by,
		        edit_new_date, edit_new_time, edit_requested_by, version, created_at, updated_at
		 FROM sessions WHERE `+col+` = $1
		 ORDER BY session_date, session_time`, participantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		var sess model.Session
		var editDate, editTime, editBy *string
		if err := rows.Scan(
			&sess.ID, &sess.DoctorID, &sess.PatientID, &sess.Date, &sess.Time, &sess.Status,
			&sess.CreatedBy, &editDate, &editTime, &editBy, &sess.Version, &sess.CreatedAt, &sess.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if editDate != nil && editTime != nil && editBy != nil {
			sess.EditRequest = &model.EditRequest{NewDate: *editDate, NewTime: *editTime, RequestedBy: *editBy}
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}
