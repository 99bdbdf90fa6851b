package validation

import (
	"fmt"
	"time"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHerbName   ConflictType = "duplicate_herb_name"
	ConflictBadHerbID           ConflictType = "bad_herb_id"
	ConflictMissingHerbField    ConflictType = "missing_herb_field"
	ConflictUnorderedSolarTerms ConflictType = "unordered_solar_terms"
	ConflictInvalidDate         ConflictType = "invalid_date"
	ConflictMissingTheme        ConflictType = "missing_theme"
	ConflictStreakInconsistent  ConflictType = "streak_inconsistent"
	ConflictNegativeCounter     ConflictType = "negative_counter"
	ConflictBadWeeklyHistogram  ConflictType = "bad_weekly_histogram"
	ConflictDuplicateSetEntry   ConflictType = "duplicate_set_entry"
	ConflictUnknownHerb         ConflictType = "unknown_herb"
)

// Conflict represents a detected problem in the catalog or a stats record
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Herb/term names involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates the built-in catalog and stats records
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateCatalog checks the compiled-in herb and solar term data. It
// only fails on a build with corrupted data, but the doctor command
// runs it anyway so the failure mode is visible instead of silent.
func (v *Validator) ValidateCatalog() ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string][]int)
	for i, herb := range calendar.Herbs {
		if herb.ID != i+1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBadHerbID,
				Description: fmt.Sprintf("Herb at position %d has id %d, want %d", i, herb.ID, i+1),
				Items:       []string{herb.Name},
			})
		}
		if herb.Name == "" || herb.Effect == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingHerbField,
				Description: fmt.Sprintf("Herb id %d is missing a name or effect", herb.ID),
			})
			continue
		}
		seen[herb.Name] = append(seen[herb.Name], herb.ID)
	}
	for name, ids := range seen {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHerbName,
				Description: fmt.Sprintf("Duplicate herb name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
			})
		}
	}

	prev := ""
	for _, term := range calendar.SolarTerms {
		if _, err := time.Parse(models.DayFormat, term.Date); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Solar term %q has unparseable date %q", term.Name, term.Date),
				Items:       []string{term.Name},
			})
			continue
		}
		if prev != "" && term.Date <= prev {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnorderedSolarTerms,
				Description: fmt.Sprintf("Solar term %q (%s) is not after the previous term (%s)", term.Name, term.Date, prev),
				Items:       []string{term.Name},
			})
		}
		prev = term.Date

		if !calendar.HasTheme(term.Name) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingTheme,
				Description: fmt.Sprintf("Solar term %q has no theme entry", term.Name),
				Items:       []string{term.Name},
			})
		}
	}

	return result
}

// ValidateStats checks a stats record for internal consistency. The
// engine repairs most of these on load; the validator reports them so
// the doctor command can show what a repair would touch.
func (v *Validator) ValidateStats(stats models.UserStats) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if stats.LongestStreak < stats.CurrentStreak {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictStreakInconsistent,
			Description: fmt.Sprintf("Longest streak (%d) is below the current streak (%d)",
				stats.LongestStreak, stats.CurrentStreak),
		})
	}

	counters := map[string]int{
		"total_meditations": stats.TotalMeditations,
		"total_minutes":     stats.TotalMinutes,
		"current_streak":    stats.CurrentStreak,
		"longest_streak":    stats.LongestStreak,
	}
	for name, value := range counters {
		if value < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeCounter,
				Description: fmt.Sprintf("Counter %s is negative: %d", name, value),
				Items:       []string{name},
			})
		}
	}

	if len(stats.WeeklyActivity) != 7 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBadWeeklyHistogram,
			Description: fmt.Sprintf("Weekly activity has %d buckets, want 7", len(stats.WeeklyActivity)),
		})
	}
	for i, count := range stats.WeeklyActivity {
		if count < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBadWeeklyHistogram,
				Description: fmt.Sprintf("Weekly activity bucket %d is negative: %d", i, count),
			})
		}
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"last_meditation_date", stats.LastMeditationDate},
		{"first_use_date", stats.FirstUseDate},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.Parse(models.DayFormat, field.value); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Field %s holds unparseable date %q", field.name, field.value),
				Items:       []string{field.name},
			})
		}
	}

	result.Conflicts = append(result.Conflicts, checkHerbSet("collected_herbs", stats.CollectedHerbs)...)
	result.Conflicts = append(result.Conflicts, checkHerbSet("favorite_herbs", stats.FavoriteHerbs)...)

	return result
}

// checkHerbSet flags duplicates and names the catalog does not know.
func checkHerbSet(setName string, herbs []string) []Conflict {
	var conflicts []Conflict
	seen := make(map[string]bool)
	for _, name := range herbs {
		if seen[name] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateSetEntry,
				Description: fmt.Sprintf("Set %s contains %q more than once", setName, name),
				Items:       []string{name},
			})
			continue
		}
		seen[name] = true
		if _, ok := calendar.HerbByName(name); !ok {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictUnknownHerb,
				Description: fmt.Sprintf("Set %s contains unknown herb %q", setName, name),
				Items:       []string{name},
			})
		}
	}
	return conflicts
}
