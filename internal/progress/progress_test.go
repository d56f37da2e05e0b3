package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/avasseur/atelier/internal/catalog"
)

// countsOnly is a fixed module-id → activity-count table.
type countsOnly map[string]int

func (c countsOnly) ActivityCount(moduleID string) (int, error) {
	n, ok := c[moduleID]
	if !ok {
		return 0, catalog.ErrModuleNotFound
	}
	return n, nil
}

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestStartCreatesFreshRecord(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 4}, nil)

	rec, created, err := l.Start("mod1", t0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if rec.CurrentWeek != 1 || rec.CurrentDay != 1 {
		t.Errorf("fresh record at week %d day %d, want 1/1", rec.CurrentWeek, rec.CurrentDay)
	}
	if rec.EarnedXP != 0 || len(rec.CompletedActivities) != 0 || rec.CompletionPercentage != 0 {
		t.Errorf("fresh record not zeroed: %+v", rec)
	}
	if !rec.StartedAt.Equal(t0) {
		t.Errorf("StartedAt = %v, want %v", rec.StartedAt, t0)
	}
}

func TestStartDoesNotOverwriteProgress(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 4}, nil)

	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, _, err := l.CompleteActivity("mod1", "act1", 50, t0); err != nil {
		t.Fatalf("CompleteActivity: %v", err)
	}

	rec, created, err := l.Start("mod1", t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("re-Start: %v", err)
	}
	if created {
		t.Error("re-start reported created = true")
	}
	if rec.EarnedXP != 50 || len(rec.CompletedActivities) != 1 {
		t.Errorf("re-start clobbered progress: %+v", rec)
	}
}

func TestStartUnknownModule(t *testing.T) {
	l := NewLedger(countsOnly{}, nil)
	if _, _, err := l.Start("ghost", t0); !errors.Is(err, catalog.ErrModuleNotFound) {
		t.Errorf("Start(ghost) err = %v, want ErrModuleNotFound", err)
	}
}

func TestCompleteActivityNotStarted(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 4}, nil)

	_, _, err := l.CompleteActivity("mod1", "act1", 50, t0)
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("err = %v, want ErrNotStarted", err)
	}
}

func TestCompleteActivityIsIdempotent(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 4}, nil)
	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	rec, applied, err := l.CompleteActivity("mod1", "act1", 50, t0)
	if err != nil {
		t.Fatalf("CompleteActivity: %v", err)
	}
	if !applied {
		t.Error("first completion not applied")
	}
	if rec.EarnedXP != 50 || rec.CompletionPercentage != 25 {
		t.Errorf("after first completion: xp=%d pct=%v, want 50/25", rec.EarnedXP, rec.CompletionPercentage)
	}

	rec, applied, err = l.CompleteActivity("mod1", "act1", 50, t0.Add(time.Minute))
	if err != nil {
		t.Fatalf("repeat CompleteActivity: %v", err)
	}
	if applied {
		t.Error("repeat completion reported applied = true")
	}
	if rec.EarnedXP != 50 || rec.CompletionPercentage != 25 || len(rec.CompletedActivities) != 1 {
		t.Errorf("repeat completion changed state: %+v", rec)
	}
}

func TestCompletionPercentageReaches100OnlyWhenFull(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 3}, nil)
	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	ids := []string{"a1", "a2", "a3"}
	for i, id := range ids {
		rec, _, err := l.CompleteActivity("mod1", id, 10, t0)
		if err != nil {
			t.Fatalf("CompleteActivity(%s): %v", id, err)
		}
		pct := rec.CompletionPercentage
		if pct < 0 || pct > 100 {
			t.Fatalf("percentage %v out of [0,100]", pct)
		}
		if i < len(ids)-1 && pct >= 100 {
			t.Fatalf("percentage hit 100 after %d of %d activities", i+1, len(ids))
		}
	}

	if got := l.Get("mod1").CompletionPercentage; got != 100 {
		t.Errorf("full completion percentage = %v, want exactly 100", got)
	}
}

func TestCompleteActivityUpdatesLastAccessed(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 2}, nil)
	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	later := t0.Add(2 * time.Hour)
	rec, _, err := l.CompleteActivity("mod1", "a1", 10, later)
	if err != nil {
		t.Fatalf("CompleteActivity: %v", err)
	}
	if !rec.LastAccessedAt.Equal(later) {
		t.Errorf("LastAccessedAt = %v, want %v", rec.LastAccessedAt, later)
	}
}

func TestAwardBadgeDeduplicates(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 2}, nil)
	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := l.AwardBadge("mod1", "first-step"); err != nil {
			t.Fatalf("AwardBadge: %v", err)
		}
	}
	if got := l.Get("mod1").EarnedBadges; len(got) != 1 {
		t.Errorf("EarnedBadges = %v, want one entry", got)
	}

	if err := l.AwardBadge("ghost", "first-step"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("AwardBadge(ghost) err = %v, want ErrNotStarted", err)
	}
}

func TestAdvanceOnlyMovesForward(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 2}, nil)
	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := l.Advance("mod1", 2, 1, t0); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	rec := l.Get("mod1")
	if rec.CurrentWeek != 2 || rec.CurrentDay != 1 {
		t.Errorf("after advance: %d/%d, want 2/1", rec.CurrentWeek, rec.CurrentDay)
	}

	// Moving backwards is ignored.
	if err := l.Advance("mod1", 1, 2, t0); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if rec.CurrentWeek != 2 || rec.CurrentDay != 1 {
		t.Errorf("backward advance changed pointers: %d/%d", rec.CurrentWeek, rec.CurrentDay)
	}
}

func TestResetClearsRecords(t *testing.T) {
	l := NewLedger(countsOnly{"mod1": 2}, nil)
	if _, _, err := l.Start("mod1", t0); err != nil {
		t.Fatalf("Start: %v", err)
	}

	l.Reset()
	if l.Get("mod1") != nil {
		t.Error("record survived Reset")
	}
	if len(l.Records()) != 0 {
		t.Errorf("Records() = %v, want empty", l.Records())
	}
}
