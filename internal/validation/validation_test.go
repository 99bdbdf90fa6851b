package validation

import (
	"testing"

	"github.com/hsinyuw/herbcal/internal/models"
)

func TestValidateCatalog_BuiltInDataIsClean(t *testing.T) {
	validator := New()

	result := validator.ValidateCatalog()

	if result.HasConflicts() {
		t.Errorf("Expected the built-in catalog to validate, got: %s", result.FormatReport())
	}
}

func TestValidateStats_CleanRecord(t *testing.T) {
	validator := New()

	stats := models.DefaultStats()
	stats.TotalMeditations = 5
	stats.TotalMinutes = 25
	stats.CurrentStreak = 2
	stats.LongestStreak = 4
	stats.LastMeditationDate = "2026-03-15"
	stats.FirstUseDate = "2026-03-01"
	stats.CollectedHerbs = []string{"人參", "黃耆"}
	stats.FavoriteHerbs = []string{"當歸"}

	result := validator.ValidateStats(stats)

	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateStats_StreakInconsistency(t *testing.T) {
	validator := New()

	stats := models.DefaultStats()
	stats.CurrentStreak = 5
	stats.LongestStreak = 2

	result := validator.ValidateStats(stats)

	if !hasConflictType(result, ConflictStreakInconsistent) {
		t.Error("Expected ConflictStreakInconsistent when longest < current")
	}
}

func TestValidateStats_NegativeCounters(t *testing.T) {
	validator := New()

	stats := models.DefaultStats()
	stats.TotalMinutes = -10

	result := validator.ValidateStats(stats)

	if !hasConflictType(result, ConflictNegativeCounter) {
		t.Error("Expected ConflictNegativeCounter for negative total minutes")
	}
}

func TestValidateStats_WeeklyHistogramShape(t *testing.T) {
	validator := New()

	stats := models.DefaultStats()
	stats.WeeklyActivity = []int{1, 2, 3} // truncated blob

	result := validator.ValidateStats(stats)

	if !hasConflictType(result, ConflictBadWeeklyHistogram) {
		t.Error("Expected ConflictBadWeeklyHistogram for a 3-bucket histogram")
	}
}

func TestValidateStats_BadDates(t *testing.T) {
	validator := New()

	stats := models.DefaultStats()
	stats.LastMeditationDate = "not-a-date"

	result := validator.ValidateStats(stats)

	if !hasConflictType(result, ConflictInvalidDate) {
		t.Error("Expected ConflictInvalidDate for an unparseable date")
	}
}

func TestValidateStats_DuplicateAndUnknownHerbs(t *testing.T) {
	validator := New()

	stats := models.DefaultStats()
	stats.CollectedHerbs = []string{"人參", "人參"}
	stats.FavoriteHerbs = []string{"無名草"}

	result := validator.ValidateStats(stats)

	if !hasConflictType(result, ConflictDuplicateSetEntry) {
		t.Error("Expected ConflictDuplicateSetEntry for a repeated herb")
	}
	if !hasConflictType(result, ConflictUnknownHerb) {
		t.Error("Expected ConflictUnknownHerb for a name outside the catalog")
	}
}

func hasConflictType(result ValidationResult, want ConflictType) bool {
	for _, conflict := range result.Conflicts {
		if conflict.Type == want {
			return true
		}
	}
	return false
}
