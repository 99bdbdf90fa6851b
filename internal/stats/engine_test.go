package stats

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/hsinyuw/herbcal/internal/models"
	"github.com/hsinyuw/herbcal/internal/storage"
)

// fakeClock is an adjustable clock for walking through calendar days.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

func newEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "herbcal.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	clock := &fakeClock{t: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	engine := NewWithClock(store, clock.now)
	if err := engine.Load(); err != nil {
		t.Fatalf("engine load failed: %v", err)
	}
	return engine, clock
}

func TestRecordMeditation_FirstEver(t *testing.T) {
	engine, _ := newEngine(t)

	got, err := engine.RecordMeditation("人參", 10)
	if err != nil {
		t.Fatalf("RecordMeditation failed: %v", err)
	}

	if got.TotalMeditations != 1 || got.TotalMinutes != 10 {
		t.Errorf("totals = %d/%d, want 1/10", got.TotalMeditations, got.TotalMinutes)
	}
	if got.CurrentStreak != 1 || got.LongestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", got.CurrentStreak, got.LongestStreak)
	}
	if len(got.CollectedHerbs) != 1 || got.CollectedHerbs[0] != "人參" {
		t.Errorf("collected = %v", got.CollectedHerbs)
	}
	if got.FirstUseDate != "2026-03-02" || got.LastMeditationDate != "2026-03-02" {
		t.Errorf("dates = %s / %s", got.FirstUseDate, got.LastMeditationDate)
	}
	// March 2 2026 is a Monday
	if got.WeeklyActivity[1] != 1 {
		t.Errorf("weekly activity = %v", got.WeeklyActivity)
	}
}

func TestRecordMeditation_DefaultMinutes(t *testing.T) {
	engine, _ := newEngine(t)

	got, err := engine.RecordMeditation("人參", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalMinutes != 5 {
		t.Errorf("omitted duration should credit the default 5 minutes, got %d", got.TotalMinutes)
	}
}

func TestRecordMeditation_SameDayRepeat(t *testing.T) {
	engine, _ := newEngine(t)

	if _, err := engine.RecordMeditation("人參", 10); err != nil {
		t.Fatal(err)
	}
	got, err := engine.RecordMeditation("黃耆", 5)
	if err != nil {
		t.Fatal(err)
	}

	if got.TotalMeditations != 2 {
		t.Errorf("total meditations = %d, want 2", got.TotalMeditations)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("same-day repeat must not touch the streak, got %d", got.CurrentStreak)
	}
	if len(got.CollectedHerbs) != 2 {
		t.Errorf("collected = %v", got.CollectedHerbs)
	}
}

func TestRecordMeditation_ConsecutiveDaysExtendStreak(t *testing.T) {
	engine, clock := newEngine(t)

	for day := 0; day < 5; day++ {
		got, err := engine.RecordMeditation("人參", 5)
		if err != nil {
			t.Fatal(err)
		}
		if got.CurrentStreak != day+1 {
			t.Fatalf("day %d: streak = %d, want %d", day, got.CurrentStreak, day+1)
		}
		clock.advanceDays(1)
	}
}

func TestRecordMeditation_GapResetsStreakToOne(t *testing.T) {
	engine, clock := newEngine(t)

	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}
	clock.advanceDays(1)
	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}

	// Skip a full day
	clock.advanceDays(2)
	got, err := engine.RecordMeditation("人參", 5)
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("streak after a gap = %d, want 1", got.CurrentStreak)
	}
	if got.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", got.LongestStreak)
	}
}

func TestRecordMeditation_LongestStreakMonotone(t *testing.T) {
	engine, clock := newEngine(t)

	prev := 0
	schedule := []int{1, 1, 1, 3, 1, 1, 1, 1, 2, 1} // days to advance after each session
	for _, step := range schedule {
		got, err := engine.RecordMeditation("人參", 5)
		if err != nil {
			t.Fatal(err)
		}
		if got.LongestStreak < prev {
			t.Fatalf("longest streak regressed: %d -> %d", prev, got.LongestStreak)
		}
		if got.LongestStreak < got.CurrentStreak {
			t.Fatalf("longest (%d) < current (%d)", got.LongestStreak, got.CurrentStreak)
		}
		prev = got.LongestStreak
		clock.advanceDays(step)
	}
}

func TestRecordMeditation_CollectionIdempotent(t *testing.T) {
	engine, clock := newEngine(t)

	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}
	clock.advanceDays(1)
	got, err := engine.RecordMeditation("人參", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.CollectedHerbs) != 1 {
		t.Errorf("recording the same herb twice duplicated it: %v", got.CollectedHerbs)
	}
}

func TestRecordMeditation_FirstUseDateWriteOnce(t *testing.T) {
	engine, clock := newEngine(t)

	first, err := engine.RecordMeditation("人參", 5)
	if err != nil {
		t.Fatal(err)
	}
	clock.advanceDays(3)
	later, err := engine.RecordMeditation("黃耆", 5)
	if err != nil {
		t.Fatal(err)
	}
	if later.FirstUseDate != first.FirstUseDate {
		t.Errorf("first use date overwritten: %s -> %s", first.FirstUseDate, later.FirstUseDate)
	}
}

func TestLoad_StreakGCAfterMissedDay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "herbcal.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	clock := &fakeClock{t: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	engine := NewWithClock(store, clock.now)
	if err := engine.Load(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := engine.RecordMeditation("人參", 5); err != nil {
			t.Fatal(err)
		}
		clock.advanceDays(1)
	}

	// Reopen two days after the last session: the streak is stale
	clock.advanceDays(1)
	reopened := storage.NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	engine2 := NewWithClock(reopened, clock.now)
	if err := engine2.Load(); err != nil {
		t.Fatal(err)
	}

	if got := engine2.Stats().CurrentStreak; got != 0 {
		t.Errorf("streak after missing a day = %d, want 0 on load", got)
	}
	if got := engine2.Stats().LongestStreak; got != 3 {
		t.Errorf("longest streak should survive the GC, got %d", got)
	}
}

func TestLoad_StreakKeptWithinOneDay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "herbcal.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	clock := &fakeClock{t: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	engine := NewWithClock(store, clock.now)
	if err := engine.Load(); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}

	// Next day: streak still alive, must not be collected
	clock.advanceDays(1)
	reopened := storage.NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	engine2 := NewWithClock(reopened, clock.now)
	if err := engine2.Load(); err != nil {
		t.Fatal(err)
	}
	if got := engine2.Stats().CurrentStreak; got != 1 {
		t.Errorf("streak = %d, want 1 the day after a session", got)
	}
}

func TestToggleFavorite_Symmetry(t *testing.T) {
	engine, _ := newEngine(t)

	if engine.IsFavorite("當歸") {
		t.Fatal("favorites should start empty")
	}
	if _, err := engine.ToggleFavorite("當歸"); err != nil {
		t.Fatal(err)
	}
	if !engine.IsFavorite("當歸") {
		t.Error("toggle on failed")
	}
	if _, err := engine.ToggleFavorite("當歸"); err != nil {
		t.Fatal(err)
	}
	if engine.IsFavorite("當歸") {
		t.Error("double toggle should restore the original membership")
	}
}

func TestToggleFavorite_IndependentOfCollection(t *testing.T) {
	engine, _ := newEngine(t)

	got, err := engine.ToggleFavorite("枸杞")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.CollectedHerbs) != 0 {
		t.Error("favoriting must not touch the collection")
	}
	if got.TotalMeditations != 0 {
		t.Error("favoriting must not touch totals")
	}
}

func TestReset(t *testing.T) {
	engine, _ := newEngine(t)

	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}
	got, err := engine.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalMeditations != 0 || got.CurrentStreak != 0 || len(got.CollectedHerbs) != 0 {
		t.Errorf("reset left data behind: %+v", got)
	}
}

func TestRecordMeditation_SessionLogged(t *testing.T) {
	engine, _ := newEngine(t)

	if _, err := engine.RecordMeditation("人參", 7); err != nil {
		t.Fatal(err)
	}
	sessions, err := engine.RecentSessions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("session log has %d entries, want 1", len(sessions))
	}
	if sessions[0].HerbName != "人參" || sessions[0].Minutes != 7 {
		t.Errorf("session = %+v", sessions[0])
	}
	if sessions[0].ID == "" {
		t.Error("session id is empty")
	}
}

// failingStore wraps a working store but rejects stat writes, to test
// the write-then-publish ordering.
type failingStore struct {
	storage.Provider
	failSaves bool
}

func (f *failingStore) SaveStats(stats models.UserStats) error {
	if f.failSaves {
		return fmt.Errorf("disk full")
	}
	return f.Provider.SaveStats(stats)
}

func TestRecordMeditation_FailedSaveLeavesMemoryUntouched(t *testing.T) {
	inner := storage.NewJSONStore(filepath.Join(t.TempDir(), "herbcal.json"))
	if err := inner.Init(); err != nil {
		t.Fatal(err)
	}
	store := &failingStore{Provider: inner}

	clock := &fakeClock{t: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	engine := NewWithClock(store, clock.now)
	if err := engine.Load(); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}

	store.failSaves = true
	clock.advanceDays(1)
	if _, err := engine.RecordMeditation("黃耆", 5); err == nil {
		t.Fatal("expected the failed save to surface an error")
	}

	got := engine.Stats()
	if got.TotalMeditations != 1 {
		t.Errorf("failed save leaked into memory: totals = %d", got.TotalMeditations)
	}
	if got.LastMeditationDate != "2026-03-02" {
		t.Errorf("failed save leaked into memory: last date = %s", got.LastMeditationDate)
	}
}

func TestLoad_WeeklyResetSetting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "herbcal.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSettings(storage.Settings{DefaultMinutes: 5, WeeklyReset: true}); err != nil {
		t.Fatal(err)
	}

	// Record on a Monday, reopen the following Monday
	clock := &fakeClock{t: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	engine := NewWithClock(store, clock.now)
	if err := engine.Load(); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.RecordMeditation("人參", 5); err != nil {
		t.Fatal(err)
	}

	clock.advanceDays(7)
	reopened := storage.NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	engine2 := NewWithClock(reopened, clock.now)
	if err := engine2.Load(); err != nil {
		t.Fatal(err)
	}

	weekly := engine2.Stats().WeeklyActivity
	for i, count := range weekly {
		if count != 0 {
			t.Errorf("weekly_reset should clear the histogram, index %d = %d", i, count)
		}
	}
}
