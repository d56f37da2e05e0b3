package profile

import (
	"errors"
	"testing"
	"time"

	"github.com/avasseur/atelier/internal/badges"
	"github.com/avasseur/atelier/internal/leveling"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func freshService() *Service {
	return NewService(New("Test Learner", "learner@example.com", t0))
}

func TestAddXPFromFreshProfile(t *testing.T) {
	s := freshService()

	got, err := s.AddXP(650)
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}

	want := leveling.Breakdown{Level: 2, CurrentLevelXP: 150, NextThreshold: 1000}
	if got != want {
		t.Errorf("AddXP(650) = %+v, want %+v", got, want)
	}
	if s.Profile().TotalXP != 650 {
		t.Errorf("TotalXP = %d, want 650", s.Profile().TotalXP)
	}
}

func TestAddXPRejectsNegative(t *testing.T) {
	s := freshService()
	if _, err := s.AddXP(100); err != nil {
		t.Fatalf("AddXP(100): %v", err)
	}

	_, err := s.AddXP(-1)
	if !errors.Is(err, ErrNegativeXP) {
		t.Fatalf("AddXP(-1) err = %v, want ErrNegativeXP", err)
	}
	if s.Profile().TotalXP != 100 {
		t.Errorf("rejected credit changed TotalXP to %d", s.Profile().TotalXP)
	}
}

// Splitting a credit must land in the same state as one combined credit.
func TestAddXPIsAdditive(t *testing.T) {
	tests := []struct{ a, b int }{
		{0, 0},
		{100, 100},
		{499, 1},
		{650, 350},
		{1200, 799},
	}

	for _, tt := range tests {
		split := freshService()
		if _, err := split.AddXP(tt.a); err != nil {
			t.Fatalf("AddXP(%d): %v", tt.a, err)
		}
		if _, err := split.AddXP(tt.b); err != nil {
			t.Fatalf("AddXP(%d): %v", tt.b, err)
		}

		combined := freshService()
		if _, err := combined.AddXP(tt.a + tt.b); err != nil {
			t.Fatalf("AddXP(%d): %v", tt.a+tt.b, err)
		}

		if split.Profile().TotalXP != combined.Profile().TotalXP {
			t.Errorf("split(%d,%d) TotalXP = %d, combined = %d", tt.a, tt.b, split.Profile().TotalXP, combined.Profile().TotalXP)
		}
		if split.Profile().Leveling() != combined.Profile().Leveling() {
			t.Errorf("split(%d,%d) leveling = %+v, combined = %+v", tt.a, tt.b, split.Profile().Leveling(), combined.Profile().Leveling())
		}
	}
}

func TestAddXPSignalsLevelUp(t *testing.T) {
	s := freshService()

	var transitions [][2]int
	s.OnLevelUp(func(from, to int) {
		transitions = append(transitions, [2]int{from, to})
	})

	if _, err := s.AddXP(400); err != nil { // level 1, no signal
		t.Fatalf("AddXP: %v", err)
	}
	if _, err := s.AddXP(700); err != nil { // 1100 total, level 3
		t.Fatalf("AddXP: %v", err)
	}
	if _, err := s.AddXP(50); err != nil { // still level 3, no signal
		t.Fatalf("AddXP: %v", err)
	}

	if len(transitions) != 1 {
		t.Fatalf("got %d level-up signals, want 1: %v", len(transitions), transitions)
	}
	if transitions[0] != [2]int{1, 3} {
		t.Errorf("transition = %v, want [1 3]", transitions[0])
	}
}

func TestAddBadgeDeduplicatesByID(t *testing.T) {
	s := freshService()
	b, err := badges.ByID(badges.FirstStepID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}

	if !s.AddBadge(b, t0) {
		t.Error("first AddBadge returned false")
	}
	if s.AddBadge(b, t0.Add(time.Hour)) {
		t.Error("duplicate AddBadge returned true")
	}

	p := s.Profile()
	if len(p.Badges) != 1 {
		t.Fatalf("Badges = %v, want one entry", p.Badges)
	}
	if !p.Badges[0].UnlockedAt.Equal(t0) {
		t.Errorf("duplicate award moved UnlockedAt to %v", p.Badges[0].UnlockedAt)
	}
}

func TestCompleteModuleOnce(t *testing.T) {
	s := freshService()

	if !s.CompleteModule("photography-fundamentals") {
		t.Error("first CompleteModule returned false")
	}
	if s.CompleteModule("photography-fundamentals") {
		t.Error("repeat CompleteModule returned true")
	}
	if got := s.Profile().CompletedModules; len(got) != 1 {
		t.Errorf("CompletedModules = %v", got)
	}
}

func TestRaiseSkillCapsAtMax(t *testing.T) {
	s := freshService()

	s.RaiseSkill("Photography", 60)
	s.RaiseSkill("Photography", 60)
	if got := s.Profile().SkillLevel("Photography"); got != DefaultSkillMax {
		t.Errorf("Photography level = %d, want capped at %d", got, DefaultSkillMax)
	}

	// Unknown meters are a fixed set; raising one is ignored.
	s.RaiseSkill("Juggling", 10)
	if got := s.Profile().SkillLevel("Juggling"); got != 0 {
		t.Errorf("unknown skill level = %d, want 0", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := freshService()
	if _, err := s.AddXP(1234); err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	b, _ := badges.ByID(badges.FirstStepID)
	s.AddBadge(b, t0)
	s.CompleteModule("photography-fundamentals")
	s.RaiseSkill("Editing", 40)

	p := s.Reset(t0.Add(24 * time.Hour))

	if p.TotalXP != 0 || len(p.Badges) != 0 || len(p.CompletedModules) != 0 {
		t.Errorf("reset profile not default: %+v", p)
	}
	lv := p.Leveling()
	if lv.Level != 1 || lv.CurrentLevelXP != 0 || lv.NextThreshold != leveling.XPPerLevel {
		t.Errorf("reset leveling = %+v", lv)
	}
	for _, sk := range p.Skills {
		if sk.Level != 0 {
			t.Errorf("skill %q survived reset at %d", sk.Name, sk.Level)
		}
	}
	if p.Name != "Test Learner" || p.Email != "learner@example.com" {
		t.Errorf("reset lost identity: %q %q", p.Name, p.Email)
	}
}
