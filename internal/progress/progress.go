// Package progress owns the per-module progress ledger: which activities a
// learner has completed, the XP earned inside each module, and the derived
// completion percentage.
package progress

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrNotStarted indicates a ledger operation on a module the learner has
// never started. Completing work in an unstarted module is a caller bug, so
// it fails loudly instead of fabricating a record.
var ErrNotStarted = errors.New("module not started")

// ModuleProgress is the mutable learner state for one started module.
type ModuleProgress struct {
	ModuleID             string    `json:"module_id"`
	CurrentWeek          int       `json:"current_week"`
	CurrentDay           int       `json:"current_day"`
	CompletedActivities  []string  `json:"completed_activities"`
	EarnedXP             int       `json:"earned_xp"`
	EarnedBadges         []string  `json:"earned_badges"`
	StartedAt            time.Time `json:"started_at"`
	LastAccessedAt       time.Time `json:"last_accessed_at"`
	CompletionPercentage float64   `json:"completion_percentage"`
}

// Completed reports whether the activity is already in the completed set.
func (p *ModuleProgress) Completed(activityID string) bool {
	return slices.Contains(p.CompletedActivities, activityID)
}

// ActivityCounter resolves a module id to its total activity count, the
// denominator for completion percentages. The static catalog satisfies it.
type ActivityCounter interface {
	ActivityCount(moduleID string) (int, error)
}

// Ledger tracks progress for every module the learner has started.
type Ledger struct {
	counter ActivityCounter
	records map[string]*ModuleProgress
}

// NewLedger creates a ledger over existing records. records may be nil for a
// fresh learner; the map is owned by the ledger afterwards.
func NewLedger(counter ActivityCounter, records map[string]*ModuleProgress) *Ledger {
	if records == nil {
		records = make(map[string]*ModuleProgress)
	}
	return &Ledger{counter: counter, records: records}
}

// Get returns the progress record for a module, or nil if never started.
func (l *Ledger) Get(moduleID string) *ModuleProgress {
	return l.records[moduleID]
}

// Records returns the underlying module-id → progress map. Callers must
// treat it as read-only; it is exposed for persistence.
func (l *Ledger) Records() map[string]*ModuleProgress {
	return l.records
}

// Start creates a fresh progress record for the module at week 1, day 1.
// Starting an already-started module is a no-op that returns the existing
// record untouched: accumulated progress is never silently overwritten.
func (l *Ledger) Start(moduleID string, now time.Time) (*ModuleProgress, bool, error) {
	if existing, ok := l.records[moduleID]; ok {
		return existing, false, nil
	}

	// Reject unknown modules up front so a typo can't create a ghost record.
	if _, err := l.counter.ActivityCount(moduleID); err != nil {
		return nil, false, fmt.Errorf("start module: %w", err)
	}

	rec := &ModuleProgress{
		ModuleID:            moduleID,
		CurrentWeek:         1,
		CurrentDay:          1,
		CompletedActivities: []string{},
		EarnedBadges:        []string{},
		StartedAt:           now,
		LastAccessedAt:      now,
	}
	l.records[moduleID] = rec
	return rec, true, nil
}

// CompleteActivity folds one activity completion into the module's record.
// The boolean reports whether the completion was applied: repeating an
// already-completed activity is a no-op so XP is never double-credited.
// The caller credits the same xpValue to the profile ledger separately.
func (l *Ledger) CompleteActivity(moduleID, activityID string, xpValue int, now time.Time) (*ModuleProgress, bool, error) {
	rec, ok := l.records[moduleID]
	if !ok {
		return nil, false, fmt.Errorf("complete activity %q: %w: %q", activityID, ErrNotStarted, moduleID)
	}

	if rec.Completed(activityID) {
		return rec, false, nil
	}

	total, err := l.counter.ActivityCount(moduleID)
	if err != nil {
		return nil, false, fmt.Errorf("complete activity %q: %w", activityID, err)
	}

	rec.CompletedActivities = append(rec.CompletedActivities, activityID)
	rec.EarnedXP += xpValue
	rec.CompletionPercentage = percentage(len(rec.CompletedActivities), total)
	rec.LastAccessedAt = now
	return rec, true, nil
}

// AwardBadge records a badge id on the module record, once.
func (l *Ledger) AwardBadge(moduleID, badgeID string) error {
	rec, ok := l.records[moduleID]
	if !ok {
		return fmt.Errorf("award badge %q: %w: %q", badgeID, ErrNotStarted, moduleID)
	}
	if !slices.Contains(rec.EarnedBadges, badgeID) {
		rec.EarnedBadges = append(rec.EarnedBadges, badgeID)
	}
	return nil
}

// Advance moves the week/day pointers. Pointers only move forward.
func (l *Ledger) Advance(moduleID string, week, day int, now time.Time) error {
	rec, ok := l.records[moduleID]
	if !ok {
		return fmt.Errorf("advance: %w: %q", ErrNotStarted, moduleID)
	}
	if week > rec.CurrentWeek || (week == rec.CurrentWeek && day > rec.CurrentDay) {
		rec.CurrentWeek = week
		rec.CurrentDay = day
		rec.LastAccessedAt = now
	}
	return nil
}

// Reset discards every progress record.
func (l *Ledger) Reset() {
	l.records = make(map[string]*ModuleProgress)
}

// percentage derives a completion percentage clamped to [0,100]. It reaches
// exactly 100 only when every activity in the module is completed.
func percentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	p := float64(completed) / float64(total) * 100
	if p < 0 {
		return 0
	}
	return p
}
