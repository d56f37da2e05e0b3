// Package badges holds the static badge catalog. Unlock timestamps live on
// the learner profile, never here.
package badges

import (
	"errors"
	"fmt"
)

// ErrBadgeNotFound indicates an unknown badge id.
var ErrBadgeNotFound = errors.New("badge not found")

// Badge is a static catalog entry for an earnable achievement.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Rarity      Rarity
}

// FirstStepID is the badge awarded the first time a learner finishes week 1
// of any module.
const FirstStepID = "first-step"

// all is the catalog, in display order.
var all = []Badge{
	{
		ID:          FirstStepID,
		Name:        "First Step",
		Description: "Finish week 1 of a module",
		Icon:        "🎓",
		Rarity:      RarityCommon,
	},
	{
		ID:          "technician",
		Name:        "Technician",
		Description: "Complete every technical exercise in a module",
		Icon:        "📸",
		Rarity:      RarityRare,
	},
	{
		ID:          "light-hunter",
		Name:        "Light Hunter",
		Description: "Complete a golden hour shooting session",
		Icon:        "🌅",
		Rarity:      RarityRare,
	},
	{
		ID:          "visual-artist",
		Name:        "Visual Artist",
		Description: "Score 85% or more on a final quiz",
		Icon:        "🎨",
		Rarity:      RarityEpic,
	},
	{
		ID:          "storyteller",
		Name:        "Storyteller",
		Description: "Complete the Videography Essentials module",
		Icon:        "🎬",
		Rarity:      RarityEpic,
	},
	{
		ID:          "eagle-eye",
		Name:        "Eagle Eye",
		Description: "Complete the Photography Fundamentals module",
		Icon:        "🏆",
		Rarity:      RarityLegendary,
	},
	{
		ID:          "perfectionist",
		Name:        "Perfectionist",
		Description: "Pass every quiz in a module on the first attempt",
		Icon:        "⚡",
		Rarity:      RarityLegendary,
	},
}

// All returns the badge catalog in display order.
func All() []Badge {
	out := make([]Badge, len(all))
	copy(out, all)
	return out
}

// ByID returns the badge with the given id.
func ByID(id string) (Badge, error) {
	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}
	return Badge{}, fmt.Errorf("%w: %q", ErrBadgeNotFound, id)
}
