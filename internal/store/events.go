package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// EventType classifies journal entries.
type EventType string

const (
	EventModuleStarted     EventType = "module_started"
	EventActivityCompleted EventType = "activity_completed"
	EventQuizSubmitted     EventType = "quiz_submitted"
	EventLevelUp           EventType = "level_up"
	EventBadgeUnlocked     EventType = "badge_unlocked"
	EventModuleCompleted   EventType = "module_completed"
	EventReset             EventType = "reset"
)

// ModuleStartedData records a learner starting a module.
type ModuleStartedData struct {
	ModuleID string `json:"module_id"`
}

// ActivityCompletedData records one activity completion and its XP credit.
type ActivityCompletedData struct {
	ModuleID   string `json:"module_id"`
	ActivityID string `json:"activity_id"`
	XP         int    `json:"xp"`
}

// QuizSubmittedData records one quiz attempt.
type QuizSubmittedData struct {
	AttemptID  string `json:"attempt_id"`
	ActivityID string `json:"activity_id"`
	QuizID     string `json:"quiz_id"`
	Percentage int    `json:"percentage"`
	Passed     bool   `json:"passed"`
}

// LevelUpData records a level transition.
type LevelUpData struct {
	FromLevel int `json:"from_level"`
	ToLevel   int `json:"to_level"`
	TotalXP   int `json:"total_xp"`
}

// BadgeUnlockedData records a badge award.
type BadgeUnlockedData struct {
	BadgeID string `json:"badge_id"`
}

// ModuleCompletedData records a finished module.
type ModuleCompletedData struct {
	ModuleID string `json:"module_id"`
	EarnedXP int    `json:"earned_xp"`
}

// Event is one journal row. Payload is the type-specific JSON body.
type Event struct {
	Sequence  int64
	Type      EventType
	Timestamp time.Time
	Payload   json.RawMessage
}

// QueryOpts filters journal reads.
type QueryOpts struct {
	Limit int       // max results, newest first (0 = unlimited)
	Type  EventType // only this type when non-empty
	From  time.Time // timestamp >= From when non-zero
}

// EventRepo is the append-only journal. Appends are best-effort from the
// caller's point of view: a failed append never blocks the learner action
// it describes, it is only reported.
type EventRepo interface {
	Append(ctx context.Context, typ EventType, payload any) error
	List(ctx context.Context, opts QueryOpts) ([]Event, error)
	Purge(ctx context.Context) error
}

// sequenceCounter hands out the global monotonic sequence shared by all
// event types, so journal order is total even across appends in the same
// millisecond. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, typ EventType, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return storageErr("append", string(typ), err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return storageErr("append", string(typ), err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO events (sequence, type, timestamp, payload) VALUES (?, ?, ?, ?)`,
		seq, string(typ), time.Now().UTC().Format(time.RFC3339Nano), string(body))
	return storageErr("append", string(typ), err)
}

func (r *eventRepo) List(ctx context.Context, opts QueryOpts) ([]Event, error) {
	query := `SELECT sequence, type, timestamp, payload FROM events`
	var args []any
	var where []string

	if opts.Type != "" {
		where = append(where, `type = ?`)
		args = append(args, string(opts.Type))
	}
	if !opts.From.IsZero() {
		where = append(where, `timestamp >= ?`)
		args = append(args, opts.From.UTC().Format(time.RFC3339Nano))
	}
	for i, w := range where {
		if i == 0 {
			query += ` WHERE ` + w
		} else {
			query += ` AND ` + w
		}
	}
	query += ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("query", string(opts.Type), err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev      Event
			ts      string
			payload string
		)
		if err := rows.Scan(&ev.Sequence, &ev.Type, &ts, &payload); err != nil {
			return nil, storageErr("query", string(opts.Type), err)
		}
		ev.Payload = json.RawMessage(payload)
		ev.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, storageErr("query", string(opts.Type), err)
		}
		events = append(events, ev)
	}
	return events, storageErr("query", string(opts.Type), rows.Err())
}

func (r *eventRepo) Purge(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return storageErr("clear", "events", err)
	}
	_, err := r.db.ExecContext(ctx, `UPDATE global_sequence SET next_val = 1 WHERE id = 1`)
	return storageErr("clear", "events", err)
}
