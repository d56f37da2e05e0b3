package leveling

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{1, 1},
		{499, 1},
		{500, 2},
		{650, 2},
		{999, 2},
		{1000, 3},
		{4999, 10},
		{5000, 11},
		{-50, 1},
	}

	for _, tt := range tests {
		got := Level(tt.totalXP)
		if got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestNextLevelThreshold(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 500},
		{499, 500},
		{500, 1000},
		{650, 1000},
		{1000, 1500},
	}

	for _, tt := range tests {
		got := NextLevelThreshold(tt.totalXP)
		if got != tt.want {
			t.Errorf("NextLevelThreshold(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestCurrentLevelXP(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 0},
		{1, 1},
		{499, 499},
		{500, 0},
		{650, 150},
		{1000, 0},
		{-10, 0},
	}

	for _, tt := range tests {
		got := CurrentLevelXP(tt.totalXP)
		if got != tt.want {
			t.Errorf("CurrentLevelXP(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

// The derived triple must reconstruct totalXP exactly and keep the
// current-level remainder inside one level quota.
func TestBreakdownReconstructsTotal(t *testing.T) {
	for totalXP := 0; totalXP <= 5*XPPerLevel; totalXP++ {
		b := For(totalXP)
		if b.CurrentLevelXP < 0 || b.CurrentLevelXP >= XPPerLevel {
			t.Fatalf("For(%d).CurrentLevelXP = %d, out of [0, %d)", totalXP, b.CurrentLevelXP, XPPerLevel)
		}
		if got := (b.Level-1)*XPPerLevel + b.CurrentLevelXP; got != totalXP {
			t.Fatalf("For(%d) does not reconstruct total: got %d", totalXP, got)
		}
		if b.NextThreshold != b.Level*XPPerLevel {
			t.Fatalf("For(%d).NextThreshold = %d, want %d", totalXP, b.NextThreshold, b.Level*XPPerLevel)
		}
	}
}

func TestForIsStable(t *testing.T) {
	for _, totalXP := range []int{0, 42, 650, 1234, 9999} {
		first := For(totalXP)
		second := For(totalXP)
		if first != second {
			t.Errorf("For(%d) changed between calls: %+v vs %+v", totalXP, first, second)
		}
	}
}
