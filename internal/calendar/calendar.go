// Package calendar maps calendar dates onto the herb catalog, the 24
// solar terms, and their wellness themes. Everything here is a pure
// function of the date and the static catalogs: resolving the same
// date twice always yields the same result.
package calendar

import (
	"fmt"
	"time"

	"github.com/hsinyuw/herbcal/internal/models"
)

// DayOfYear returns the 1-based ordinal of the date counted from
// January 1 of the anchor year. Dates before the anchor year yield
// zero or negative ordinals; HerbForDate still maps those onto the
// catalog via floored modulo.
func DayOfYear(date time.Time) int {
	start := time.Date(AnchorYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(start).Hours()/24) + 1
}

// floorMod is a mathematically correct modulo: the result is always in
// [0, m) even for negative n, unlike Go's truncating % operator.
func floorMod(n, m int) int {
	return ((n % m) + m) % m
}

// HerbForDate returns the herb assigned to the given date. The catalog
// is cycled by day-of-year, so consecutive days visit every herb once
// in catalog order before wrapping.
func HerbForDate(date time.Time) models.Herb {
	idx := floorMod(DayOfYear(date)-1, len(Herbs))
	return Herbs[idx]
}

// SolarTermForDate returns the solar term active on the given date:
// the latest term whose date is on or before it. Dates before the
// anchor year's first term fall back to the previous year's winter
// solstice.
func SolarTermForDate(date time.Time) models.SolarTerm {
	day := date.Format(models.DayFormat)
	current := previousYearEnd
	for _, term := range SolarTerms {
		if term.Date > day {
			break
		}
		current = term
	}
	return current
}

// ThemeForTerm returns the wellness theme for a solar-term name, or a
// neutral default if the name is unrecognized.
func ThemeForTerm(name string) models.SeasonTheme {
	if theme, ok := termThemes[name]; ok {
		return theme
	}
	return defaultTheme
}

// SeasonColorFor returns the display palette for a season tag,
// defaulting to the spring palette.
func SeasonColorFor(season models.Season) models.ColorPair {
	if pair, ok := seasonColors[season]; ok {
		return pair
	}
	return seasonColors[models.SeasonSpring]
}

// GenerateMeditationText renders the guided-meditation script for a
// herb and solar term. The template is fixed; identical inputs produce
// identical text.
func GenerateMeditationText(herb models.Herb, term models.SolarTerm) string {
	theme := ThemeForTerm(term.Name)
	return fmt.Sprintf(`今日藥材：%s
功效：%s

節氣：%s
養生主題：%s

冥想引導：
閉上眼睛，深呼吸三次。
想像%s的能量緩緩流入體內，
%s，滋養身心。
在這%s時節，
讓我們%s，與自然和諧共處。
保持這份寧靜，感受內在的平和。`,
		herb.Name, herb.Effect,
		term.Name, theme.Theme,
		herb.Name,
		herb.Effect,
		term.Name, theme.Theme)
}

// ResolveDay resolves a date into its full day record.
func ResolveDay(date time.Time) models.DayRecord {
	herb := HerbForDate(date)
	term := SolarTermForDate(date)
	return models.DayRecord{
		Date:           date,
		Herb:           herb,
		SolarTerm:      term,
		Theme:          ThemeForTerm(term.Name),
		SeasonColor:    SeasonColorFor(term.Season),
		MeditationText: GenerateMeditationText(herb, term),
		DayOfYear:      DayOfYear(date),
	}
}

// MonthDays resolves every day of the given month, in order.
func MonthDays(year int, month time.Month) []models.DayRecord {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	days := make([]models.DayRecord, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, ResolveDay(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)))
	}
	return days
}

// MonthSolarTerms returns the solar terms whose dates fall inside the
// given month of the anchor year.
func MonthSolarTerms(year int, month time.Month) []models.SolarTerm {
	var terms []models.SolarTerm
	for _, term := range SolarTerms {
		t := term.Time()
		if t.Year() == year && t.Month() == month {
			terms = append(terms, term)
		}
	}
	return terms
}
