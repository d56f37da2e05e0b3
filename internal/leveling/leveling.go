// Package leveling maps cumulative experience points to levels.
//
// Levels are fixed-size buckets of XPPerLevel points. All functions are pure
// and total over totalXP; negative input is clamped to a fresh level-1 state,
// and callers that treat negative XP as an error reject it before calling in.
package leveling

// XPPerLevel is the experience quota for one level.
const XPPerLevel = 500

// Level returns the level reached with totalXP cumulative points.
// Level 1 starts at 0 XP; every XPPerLevel points advance one level.
func Level(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/XPPerLevel + 1
}

// NextLevelThreshold returns the cumulative XP required to reach the next
// level boundary from totalXP.
func NextLevelThreshold(totalXP int) int {
	return Level(totalXP) * XPPerLevel
}

// CurrentLevelXP returns the XP accrued since the start of the current level.
// The result is always in [0, XPPerLevel).
func CurrentLevelXP(totalXP int) int {
	if totalXP < 0 {
		return 0
	}
	return totalXP - (Level(totalXP)-1)*XPPerLevel
}

// Breakdown is the derived leveling triple for a given XP total.
type Breakdown struct {
	Level          int
	CurrentLevelXP int
	NextThreshold  int
}

// For recomputes the full leveling triple from totalXP alone. The triple is
// never stored; it is derived on every read so it cannot drift from totalXP.
func For(totalXP int) Breakdown {
	return Breakdown{
		Level:          Level(totalXP),
		CurrentLevelXP: CurrentLevelXP(totalXP),
		NextThreshold:  NextLevelThreshold(totalXP),
	}
}
