package stats

import (
	"math"

	"github.com/hsinyuw/herbcal/internal/models"
)

// The practice level is a pure function of the aggregates: nothing
// level-related is persisted.

// MaxLevel caps the exponential curve.
const MaxLevel = 100

// XP converts the aggregates into experience points: each completed
// meditation is worth 10, each minute 1.
func XP(s models.UserStats) int64 {
	return int64(s.TotalMeditations)*10 + int64(s.TotalMinutes)
}

// XPForLevel returns the cumulative XP required to reach a level.
// Exponential curve: 100 * 1.2^(level-1) for level >= 2, so each level
// costs strictly more than the previous one.
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	return int64(100 * math.Pow(1.2, float64(level-1)))
}

// LevelForXP returns the level reached with the given XP.
func LevelForXP(xp int64) int {
	level := 1
	for level < MaxLevel {
		if xp < XPForLevel(level+1) {
			return level
		}
		level++
	}
	return MaxLevel
}

// LevelInfo is the derived level view handed to the UI.
type LevelInfo struct {
	Level       int
	XP          int64
	XPToNext    int64
	ProgressPct float64
}

// LevelFor computes the full level view for a snapshot.
func LevelFor(s models.UserStats) LevelInfo {
	xp := XP(s)
	level := LevelForXP(xp)

	info := LevelInfo{Level: level, XP: xp}
	if level >= MaxLevel {
		info.ProgressPct = 100
		return info
	}

	this := XPForLevel(level)
	next := XPForLevel(level + 1)
	info.XPToNext = next - xp
	if info.XPToNext < 0 {
		info.XPToNext = 0
	}
	if span := next - this; span > 0 {
		pct := float64(xp-this) / float64(span) * 100
		info.ProgressPct = math.Min(100, math.Max(0, pct))
	}
	return info
}
