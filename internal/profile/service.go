package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/avasseur/atelier/internal/badges"
	"github.com/avasseur/atelier/internal/leveling"
)

// ErrNegativeXP indicates an attempt to credit a negative XP amount.
// TotalXP is monotonically non-decreasing; the caller passed a bad value.
var ErrNegativeXP = errors.New("xp amount must not be negative")

// LevelUpFunc observes level-up transitions. The signal is advisory: it
// drives celebratory output and journal events, never stored state.
type LevelUpFunc func(from, to int)

// Service mutates a single learner's profile.
type Service struct {
	profile   *Profile
	observers []LevelUpFunc
}

// NewService wraps an existing profile.
func NewService(p *Profile) *Service {
	return &Service{profile: p}
}

// Profile returns the wrapped profile.
func (s *Service) Profile() *Profile {
	return s.profile
}

// OnLevelUp registers an observer called whenever AddXP crosses one or more
// level boundaries.
func (s *Service) OnLevelUp(fn LevelUpFunc) {
	s.observers = append(s.observers, fn)
}

// AddXP credits amount to the XP total and rederives the level triple.
// Splitting a credit into parts yields the same final state as one credit of
// the sum.
func (s *Service) AddXP(amount int) (leveling.Breakdown, error) {
	if amount < 0 {
		return s.profile.Leveling(), fmt.Errorf("add xp: %w: %d", ErrNegativeXP, amount)
	}

	before := leveling.Level(s.profile.TotalXP)
	s.profile.TotalXP += amount
	after := s.profile.Leveling()

	if after.Level > before {
		for _, fn := range s.observers {
			fn(before, after.Level)
		}
	}
	return after, nil
}

// AddBadge unlocks a badge at the given time. Awarding the same badge id
// twice is deduplicated; the second award reports false and leaves the
// original unlock timestamp untouched.
func (s *Service) AddBadge(b badges.Badge, now time.Time) bool {
	if s.profile.HasBadge(b.ID) {
		return false
	}
	s.profile.Badges = append(s.profile.Badges, UnlockedBadge{BadgeID: b.ID, UnlockedAt: now})
	return true
}

// CompleteModule records a module in the completed list, once.
func (s *Service) CompleteModule(moduleID string) bool {
	if s.profile.HasCompletedModule(moduleID) {
		return false
	}
	s.profile.CompletedModules = append(s.profile.CompletedModules, moduleID)
	return true
}

// RaiseSkill adds points to the named skill meter, capped at its max.
// Unknown skill names are ignored: the meter set is fixed.
func (s *Service) RaiseSkill(name string, points int) {
	for i := range s.profile.Skills {
		sk := &s.profile.Skills[i]
		if sk.Name != name {
			continue
		}
		sk.Level += points
		if sk.Level > sk.MaxLevel {
			sk.Level = sk.MaxLevel
		}
		if sk.Level < 0 {
			sk.Level = 0
		}
		return
	}
}

// Reset replaces the profile with a fresh default one, keeping the display
// name and email. Destructive and irreversible.
func (s *Service) Reset(now time.Time) *Profile {
	s.profile = New(s.profile.Name, s.profile.Email, now)
	return s.profile
}
