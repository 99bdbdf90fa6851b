package models

import (
	"slices"
	"time"
)

// DayFormat is the day-granular date layout used everywhere stats are
// concerned. Streaks and the activity histogram only care about
// calendar days, never clock time.
const DayFormat = "2006-01-02"

// UserStats is the single persisted, mutable record of the app. It is
// owned by the stats engine; everything else only reads snapshots.
//
// Dates are YYYY-MM-DD strings, empty meaning "never". CollectedHerbs
// and FavoriteHerbs are sets serialized as insertion-ordered arrays of
// unique names. WeeklyActivity is indexed by weekday, 0=Sunday.
type UserStats struct {
	TotalMeditations   int      `json:"total_meditations"`
	TotalMinutes       int      `json:"total_minutes"`
	CurrentStreak      int      `json:"current_streak"`
	LongestStreak      int      `json:"longest_streak"`
	LastMeditationDate string   `json:"last_meditation_date,omitempty"`
	FirstUseDate       string   `json:"first_use_date,omitempty"`
	CollectedHerbs     []string `json:"collected_herbs"`
	FavoriteHerbs      []string `json:"favorite_herbs"`
	WeeklyActivity     []int    `json:"weekly_activity"`
}

// DefaultStats returns the all-zero record used for first runs and as
// the base that stored data is merged over.
func DefaultStats() UserStats {
	return UserStats{
		CollectedHerbs: []string{},
		FavoriteHerbs:  []string{},
		WeeklyActivity: make([]int, 7),
	}
}

// Normalize repairs a record deserialized from storage so that absent
// or malformed fields fall back to their defaults. Stored data written
// by older or newer versions may be missing fields entirely.
func (s *UserStats) Normalize() {
	if s.CollectedHerbs == nil {
		s.CollectedHerbs = []string{}
	}
	if s.FavoriteHerbs == nil {
		s.FavoriteHerbs = []string{}
	}
	for len(s.WeeklyActivity) < 7 {
		s.WeeklyActivity = append(s.WeeklyActivity, 0)
	}
	s.WeeklyActivity = s.WeeklyActivity[:7]
	if s.TotalMeditations < 0 {
		s.TotalMeditations = 0
	}
	if s.TotalMinutes < 0 {
		s.TotalMinutes = 0
	}
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

// Clone returns a deep copy so snapshots handed to callers cannot
// alias the engine's in-memory state.
func (s UserStats) Clone() UserStats {
	c := s
	c.CollectedHerbs = slices.Clone(s.CollectedHerbs)
	c.FavoriteHerbs = slices.Clone(s.FavoriteHerbs)
	c.WeeklyActivity = slices.Clone(s.WeeklyActivity)
	return c
}

// HasCollected reports set membership in the collected-herb set.
func (s UserStats) HasCollected(herbName string) bool {
	return slices.Contains(s.CollectedHerbs, herbName)
}

// HasFavorite reports set membership in the favorites set.
func (s UserStats) HasFavorite(herbName string) bool {
	return slices.Contains(s.FavoriteHerbs, herbName)
}

// MeditationSession is one entry of the append-only session log. The
// persisted aggregates in UserStats are derived from these events, but
// the log itself is kept for display ("recent sessions") only.
type MeditationSession struct {
	ID        string    `json:"id"`
	HerbName  string    `json:"herb_name"`
	Minutes   int       `json:"minutes"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}
