package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hsinyuw/herbcal/internal/models"
)

// newStores builds one store of each backend rooted in a temp dir.
func newStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "herbcal.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "herbcal.db")),
	}
}

func TestInitAndLoadRoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			if err := store.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			stats, err := store.GetStats()
			if err != nil {
				t.Fatalf("GetStats failed: %v", err)
			}
			if stats.TotalMeditations != 0 || stats.CurrentStreak != 0 {
				t.Errorf("fresh store should hold the default record, got %+v", stats)
			}
			if stats.CollectedHerbs == nil || stats.FavoriteHerbs == nil {
				t.Error("fresh record has nil sets")
			}
			if len(stats.WeeklyActivity) != 7 {
				t.Errorf("weekly activity length = %d, want 7", len(stats.WeeklyActivity))
			}

			settings, err := store.GetSettings()
			if err != nil {
				t.Fatalf("GetSettings failed: %v", err)
			}
			if settings.DefaultMinutes != 5 {
				t.Errorf("default minutes = %d, want 5", settings.DefaultMinutes)
			}
		})
	}
}

func TestSaveStatsRoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			stats := models.DefaultStats()
			stats.TotalMeditations = 12
			stats.TotalMinutes = 60
			stats.CurrentStreak = 3
			stats.LongestStreak = 7
			stats.LastMeditationDate = "2026-03-15"
			stats.FirstUseDate = "2026-01-02"
			stats.CollectedHerbs = []string{"人參", "黃耆"}
			stats.FavoriteHerbs = []string{"當歸"}
			stats.WeeklyActivity = []int{1, 0, 2, 0, 3, 0, 6}

			if err := store.SaveStats(stats); err != nil {
				t.Fatalf("SaveStats failed: %v", err)
			}

			loaded, err := store.GetStats()
			if err != nil {
				t.Fatalf("GetStats failed: %v", err)
			}
			if loaded.TotalMeditations != 12 || loaded.TotalMinutes != 60 {
				t.Errorf("totals not round-tripped: %+v", loaded)
			}
			if loaded.CurrentStreak != 3 || loaded.LongestStreak != 7 {
				t.Errorf("streaks not round-tripped: %+v", loaded)
			}
			if loaded.LastMeditationDate != "2026-03-15" || loaded.FirstUseDate != "2026-01-02" {
				t.Errorf("dates not round-tripped: %+v", loaded)
			}
			if len(loaded.CollectedHerbs) != 2 || loaded.CollectedHerbs[0] != "人參" {
				t.Errorf("collected herbs not round-tripped: %v", loaded.CollectedHerbs)
			}
			if len(loaded.FavoriteHerbs) != 1 || loaded.FavoriteHerbs[0] != "當歸" {
				t.Errorf("favorite herbs not round-tripped: %v", loaded.FavoriteHerbs)
			}
			if loaded.WeeklyActivity[6] != 6 {
				t.Errorf("weekly activity not round-tripped: %v", loaded.WeeklyActivity)
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			if err := store.SaveSettings(Settings{DefaultMinutes: 10, WeeklyReset: true}); err != nil {
				t.Fatalf("SaveSettings failed: %v", err)
			}

			settings, err := store.GetSettings()
			if err != nil {
				t.Fatalf("GetSettings failed: %v", err)
			}
			if settings.DefaultMinutes != 10 || !settings.WeeklyReset {
				t.Errorf("settings not round-tripped: %+v", settings)
			}
		})
	}
}

func TestSessionLog(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			base := time.Date(2026, time.April, 1, 8, 0, 0, 0, time.UTC)
			for i, herb := range []string{"人參", "黃耆", "當歸"} {
				sess := models.MeditationSession{
					ID:        string(rune('a' + i)),
					HerbName:  herb,
					Minutes:   5,
					Day:       base.AddDate(0, 0, i).Format(models.DayFormat),
					CreatedAt: base.AddDate(0, 0, i),
				}
				if err := store.AddSession(sess); err != nil {
					t.Fatalf("AddSession failed: %v", err)
				}
			}

			sessions, err := store.GetSessions(2)
			if err != nil {
				t.Fatalf("GetSessions failed: %v", err)
			}
			if len(sessions) != 2 {
				t.Fatalf("limit not honored, got %d sessions", len(sessions))
			}
			// Newest first
			if sessions[0].HerbName != "當歸" || sessions[1].HerbName != "黃耆" {
				t.Errorf("sessions not ordered newest-first: %v, %v", sessions[0].HerbName, sessions[1].HerbName)
			}
		})
	}
}

func TestInitTwiceFails_JSON(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "herbcal.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should fail once the file exists")
	}
}

func TestLoadWithoutInitFails(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err == nil {
				t.Error("Load should fail before Init")
			}
		})
	}
}

// Blobs written before new fields existed must load with defaults for
// the missing fields.
func TestJSONForwardCompatibleLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "herbcal.json")

	legacy := map[string]any{
		"version": 1,
		"stats": map[string]any{
			"total_meditations": 4,
			"current_streak":    2,
			"collected_herbs":   []string{"人參"},
			// no total_minutes, no favorites, no weekly_activity
		},
	}
	data, err := json.Marshal(legacy)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed on legacy blob: %v", err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMeditations != 4 || stats.CurrentStreak != 2 {
		t.Errorf("stored fields lost: %+v", stats)
	}
	if stats.TotalMinutes != 0 {
		t.Errorf("missing field should default to zero, got %d", stats.TotalMinutes)
	}
	if stats.FavoriteHerbs == nil {
		t.Error("missing favorites should default to an empty set")
	}
	if len(stats.WeeklyActivity) != 7 {
		t.Errorf("missing weekly activity should default to 7 zeros, got %v", stats.WeeklyActivity)
	}
	if stats.LongestStreak < stats.CurrentStreak {
		t.Error("normalize should restore longestStreak >= currentStreak")
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.DefaultMinutes != 5 {
		t.Errorf("missing settings should keep defaults, got %+v", settings)
	}
}

// A record written by a SQLite store missing newer keys loads with
// defaults for those keys.
func TestSQLiteForwardCompatibleLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herbcal.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// Write only a subset of the keys, as an older version would have
	if _, err := store.GetDB().Exec(
		"INSERT INTO stats (key, value) VALUES ('total_meditations', '9'), ('current_streak', '3')"); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMeditations != 9 || stats.CurrentStreak != 3 {
		t.Errorf("stored keys lost: %+v", stats)
	}
	if stats.CollectedHerbs == nil || len(stats.WeeklyActivity) != 7 {
		t.Errorf("missing keys should fall back to defaults: %+v", stats)
	}
}

func TestSnapshotIsolation_JSON(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "herbcal.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	stats := models.DefaultStats()
	stats.CollectedHerbs = []string{"人參"}
	if err := store.SaveStats(stats); err != nil {
		t.Fatal(err)
	}

	snap, err := store.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	snap.CollectedHerbs[0] = "mutated"

	again, err := store.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if again.CollectedHerbs[0] != "人參" {
		t.Error("mutating a snapshot leaked into the store")
	}
}
