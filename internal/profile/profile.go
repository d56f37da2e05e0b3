// Package profile aggregates the learner's account-wide state: cumulative
// XP, unlocked badges, completed modules and skill meters. Only TotalXP is
// stored; level, current-level XP and the next threshold are derived through
// the leveling engine on every read.
package profile

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/avasseur/atelier/internal/leveling"
)

// UnlockedBadge is a badge the learner has earned, stamped at unlock time.
type UnlockedBadge struct {
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Skill is one named skill meter.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"max_level"`
}

// Profile is the learner's persisted account record.
type Profile struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	TotalXP          int             `json:"total_xp"`
	Badges           []UnlockedBadge `json:"badges"`
	CompletedModules []string        `json:"completed_modules"`
	Skills           []Skill         `json:"skills"`
	JoinedAt         time.Time       `json:"joined_at"`
}

// DefaultSkillMax is the ceiling for every skill meter.
const DefaultSkillMax = 100

// DefaultSkills returns the fixed skill meters of a fresh profile, all at 0.
func DefaultSkills() []Skill {
	names := []string{"Photography", "Videography", "Editing", "Creativity", "Technique"}
	skills := make([]Skill, 0, len(names))
	for _, n := range names {
		skills = append(skills, Skill{Name: n, Level: 0, MaxLevel: DefaultSkillMax})
	}
	return skills
}

// New creates a fresh level-1 profile with zero XP and default skill meters.
func New(name, email string, now time.Time) *Profile {
	return &Profile{
		ID:               uuid.NewString(),
		Name:             name,
		Email:            email,
		Badges:           []UnlockedBadge{},
		CompletedModules: []string{},
		Skills:           DefaultSkills(),
		JoinedAt:         now,
	}
}

// Leveling derives the level triple from the stored XP total.
func (p *Profile) Leveling() leveling.Breakdown {
	return leveling.For(p.TotalXP)
}

// HasBadge reports whether a badge id is already unlocked.
func (p *Profile) HasBadge(badgeID string) bool {
	return slices.ContainsFunc(p.Badges, func(b UnlockedBadge) bool {
		return b.BadgeID == badgeID
	})
}

// HasCompletedModule reports whether a module id is in the completed list.
func (p *Profile) HasCompletedModule(moduleID string) bool {
	return slices.Contains(p.CompletedModules, moduleID)
}

// SkillLevel returns the current level of the named skill meter, 0 if the
// profile has no such meter.
func (p *Profile) SkillLevel(name string) int {
	for _, s := range p.Skills {
		if s.Name == name {
			return s.Level
		}
	}
	return 0
}
