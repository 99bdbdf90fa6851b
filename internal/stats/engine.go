// Package stats owns the persisted user record: meditation totals,
// streaks, the weekly histogram, the herb collection, and favorites.
// One Engine instance exists per process; everything else reads
// snapshots and calls its mutation methods.
package stats

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hsinyuw/herbcal/internal/models"
	"github.com/hsinyuw/herbcal/internal/storage"
)

// Engine mediates all access to the stats record. Mutations follow
// write-then-publish: the in-memory snapshot is only replaced after
// the store accepted the new record, so readers never observe state
// that isn't on disk.
type Engine struct {
	store    storage.Provider
	now      func() time.Time
	settings storage.Settings
	stats    models.UserStats
}

// New creates an engine backed by the given store. Call Load before
// using it.
func New(store storage.Provider) *Engine {
	return NewWithClock(store, time.Now)
}

// NewWithClock is New with an injectable clock, for tests that walk
// through calendar days.
func NewWithClock(store storage.Provider, clock func() time.Time) *Engine {
	return &Engine{
		store:    store,
		now:      clock,
		settings: storage.DefaultSettings(),
		stats:    models.DefaultStats(),
	}
}

// Load pulls settings and the stats record from the store and restores
// invariants that time alone can break. A read failure falls back to
// the default record: the app starts regardless, the failure is only
// logged.
func (e *Engine) Load() error {
	settings, err := e.store.GetSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings, using defaults: %v\n", err)
		settings = storage.DefaultSettings()
	}
	e.settings = settings

	stats, err := e.store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load stats, starting from defaults: %v\n", err)
		stats = models.DefaultStats()
	}

	// Lazy streak check: if more than one full day passed since the
	// last session, the streak is already broken, so reflect that now
	// instead of waiting for the next recorded session. The repaired
	// value is not written back; the next successful save persists it.
	today := e.today()
	if stats.LastMeditationDate != "" {
		if gap := daysBetween(stats.LastMeditationDate, today); gap > 1 {
			stats.CurrentStreak = 0
		}
	}

	if e.settings.WeeklyReset && stats.LastMeditationDate != "" {
		if isoWeek(stats.LastMeditationDate) != isoWeek(today) {
			stats.WeeklyActivity = make([]int, 7)
		}
	}

	e.stats = stats
	return nil
}

// Stats returns a snapshot of the current record.
func (e *Engine) Stats() models.UserStats {
	return e.stats.Clone()
}

// Settings returns the settings the engine was loaded with.
func (e *Engine) Settings() storage.Settings {
	return e.settings
}

// RecordMeditation records one completed meditation for the given herb
// and returns the updated snapshot. Minutes <= 0 means "use the
// configured default". Repeats on the same calendar day still count
// toward totals and the collection, but leave the streak untouched.
func (e *Engine) RecordMeditation(herbName string, minutes int) (models.UserStats, error) {
	if minutes <= 0 {
		minutes = e.settings.DefaultMinutes
		if minutes <= 0 {
			minutes = 5
		}
	}

	now := e.now()
	today := now.Format(models.DayFormat)

	next := e.stats.Clone()

	if today != next.LastMeditationDate {
		yesterday := now.AddDate(0, 0, -1).Format(models.DayFormat)
		switch {
		case next.LastMeditationDate == yesterday:
			next.CurrentStreak++
		default:
			// First session ever, or a gap: the streak restarts at 1
			// without passing through zero.
			next.CurrentStreak = 1
		}
	}
	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}

	next.WeeklyActivity[int(now.Weekday())]++
	if !next.HasCollected(herbName) {
		next.CollectedHerbs = append(next.CollectedHerbs, herbName)
	}
	next.TotalMeditations++
	next.TotalMinutes += minutes
	next.LastMeditationDate = today
	if next.FirstUseDate == "" {
		next.FirstUseDate = today
	}

	if err := e.store.SaveStats(next); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to save stats: %w", err)
	}
	e.stats = next

	session := models.MeditationSession{
		ID:        uuid.New().String(),
		HerbName:  herbName,
		Minutes:   minutes,
		Day:       today,
		CreatedAt: now,
	}
	if err := e.store.AddSession(session); err != nil {
		// The aggregates are already durable; losing one log entry is
		// not worth failing the whole operation.
		fmt.Fprintf(os.Stderr, "Warning: failed to append session log: %v\n", err)
	}

	return next.Clone(), nil
}

// ToggleFavorite flips membership of the herb in the favorites set and
// returns the updated snapshot.
func (e *Engine) ToggleFavorite(herbName string) (models.UserStats, error) {
	next := e.stats.Clone()

	if idx := indexOf(next.FavoriteHerbs, herbName); idx >= 0 {
		next.FavoriteHerbs = append(next.FavoriteHerbs[:idx], next.FavoriteHerbs[idx+1:]...)
	} else {
		next.FavoriteHerbs = append(next.FavoriteHerbs, herbName)
	}

	if err := e.store.SaveStats(next); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to save stats: %w", err)
	}
	e.stats = next
	return next.Clone(), nil
}

// IsFavorite reports whether the herb is in the favorites set.
func (e *Engine) IsFavorite(herbName string) bool {
	return e.stats.HasFavorite(herbName)
}

// Reset replaces the record with the default all-zero state. Asking
// the user for confirmation is the caller's job.
func (e *Engine) Reset() (models.UserStats, error) {
	next := models.DefaultStats()
	if err := e.store.SaveStats(next); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to save stats: %w", err)
	}
	e.stats = next
	return next.Clone(), nil
}

// RecentSessions returns the newest entries of the session log.
func (e *Engine) RecentSessions(limit int) ([]models.MeditationSession, error) {
	return e.store.GetSessions(limit)
}

func (e *Engine) today() string {
	return e.now().Format(models.DayFormat)
}

// daysBetween counts whole calendar days from one YYYY-MM-DD day to
// another. Unparseable input counts as "long ago" so a corrupt date
// breaks the streak instead of extending it.
func daysBetween(from, to string) int {
	a, errA := time.Parse(models.DayFormat, from)
	b, errB := time.Parse(models.DayFormat, to)
	if errA != nil || errB != nil {
		return 1 << 30
	}
	return int(b.Sub(a).Hours() / 24)
}

// isoWeek returns "YYYY-Www" for a YYYY-MM-DD day.
func isoWeek(day string) string {
	t, err := time.Parse(models.DayFormat, day)
	if err != nil {
		return ""
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
