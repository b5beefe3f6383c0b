package session

import (
	"time"

	"mindlink-api/internal/model"
	"mindlink-api/internal/schedule"
)

// Participants may join from 10 minutes before the scheduled start until 30
// minutes after it, inclusive on both ends.
const (
	joinEarly = 10 * time.Minute
	joinLate  = 30 * time.Minute
)

// startInstant is the current calendar date at the session's time of day.
func startInstant(s *model.Session, now time.Time) (time.Time, bool) {
	h, m, err := schedule.ParseTime(s.Time)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location()), true
}

// JoinEligible reports whether the session can be joined at the given
// instant: it must be accepted, scheduled for today, and now must fall
// within [start−10m, start+30m].
func JoinEligible(s *model.Session, now time.Time) bool {
	if Status(s.Status) != StatusAccepted {
		return false
	}
	if !schedule.SameDay(s.Date, now) {
		return false
	}
	start, ok := startInstant(s, now)
	if !ok {
		return false
	}
	return !now.Before(start.Add(-joinEarly)) && !now.After(start.Add(joinLate))
}

// Expired reports whether the join window has closed: now is past
// start+30m. It is independent of the session's status so callers can
// render "expired" instead of a disabled join action.
func Expired(s *model.Session, now time.Time) bool {
	start, ok := startInstant(s, now)
	if !ok {
		return false
	}
	return now.After(start.Add(joinLate))
}
