package store

import (
	"database/sql"
	"time"
)

// Event records one gesture label transition observed by the pipeline.
type Event struct {
	ID          int64
	SessionID   string
	Frame       int
	Label       string
	FingerCount int
	CreatedAt   time.Time
}

// EventRepository provides operations for gesture events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new event.
func (r *EventRepository) Create(e *Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(
		`INSERT INTO gesture_events (session_id, frame, label, finger_count, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.Frame, e.Label, e.FingerCount, e.CreatedAt,
	)
	if err != nil {
		return err
	}

	e.ID, err = result.LastInsertId()
	return err
}

// ListBySession retrieves all events for a session in frame order.
func (r *EventRepository) ListBySession(sessionID string) ([]*Event, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, frame, label, finger_count, created_at
		 FROM gesture_events
		 WHERE session_id = ?
		 ORDER BY frame`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecent retrieves the most recent events across all sessions.
func (r *EventRepository) ListRecent(limit int) ([]*Event, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, frame, label, finger_count, created_at
		 FROM gesture_events
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CountByLabel returns how many events carry the given label.
func (r *EventRepository) CountByLabel(label string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM gesture_events WHERE label = ?`,
		label,
	).Scan(&count)
	return count, err
}

func scanEvents(rows *sql.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Frame, &e.Label, &e.FingerCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
