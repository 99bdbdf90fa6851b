package stats

import (
	"testing"

	"github.com/hsinyuw/herbcal/internal/models"
)

func TestXP(t *testing.T) {
	s := models.DefaultStats()
	s.TotalMeditations = 3
	s.TotalMinutes = 45
	if got := XP(s); got != 75 {
		t.Errorf("XP = %d, want 75", got)
	}
}

func TestXPForLevel_StrictlyIncreasing(t *testing.T) {
	if XPForLevel(1) != 0 {
		t.Errorf("level 1 must cost nothing, got %d", XPForLevel(1))
	}
	prev := XPForLevel(2)
	for level := 3; level <= MaxLevel; level++ {
		cost := XPForLevel(level)
		if cost <= prev {
			t.Fatalf("level %d costs %d, not above level %d's %d", level, cost, level-1, prev)
		}
		prev = cost
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{119, 1},
		{120, 2}, // 100 * 1.2^1
		{143, 2},
		{144, 3}, // 100 * 1.2^2
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXP_ConsistentWithThresholds(t *testing.T) {
	for level := 2; level <= 20; level++ {
		threshold := XPForLevel(level)
		if got := LevelForXP(threshold); got != level {
			t.Errorf("exactly at threshold of level %d: got level %d", level, got)
		}
		if got := LevelForXP(threshold - 1); got != level-1 {
			t.Errorf("one XP below threshold of level %d: got level %d", level, got)
		}
	}
}

func TestLevelFor(t *testing.T) {
	s := models.DefaultStats()
	s.TotalMeditations = 10
	s.TotalMinutes = 30 // 130 XP, inside level 2

	info := LevelFor(s)
	if info.Level != 2 {
		t.Fatalf("level = %d, want 2", info.Level)
	}
	if info.XP != 130 {
		t.Errorf("xp = %d, want 130", info.XP)
	}
	if info.XPToNext != XPForLevel(3)-130 {
		t.Errorf("xp to next = %d, want %d", info.XPToNext, XPForLevel(3)-130)
	}
	if info.ProgressPct < 0 || info.ProgressPct > 100 {
		t.Errorf("progress out of range: %f", info.ProgressPct)
	}
}

func TestLevelFor_Cap(t *testing.T) {
	s := models.DefaultStats()
	s.TotalMinutes = 1 << 40

	info := LevelFor(s)
	if info.Level != MaxLevel {
		t.Errorf("level = %d, want cap %d", info.Level, MaxLevel)
	}
	if info.XPToNext != 0 {
		t.Errorf("at the cap there is no next level, xp to next = %d", info.XPToNext)
	}
	if info.ProgressPct != 100 {
		t.Errorf("progress at cap = %f, want 100", info.ProgressPct)
	}
}
