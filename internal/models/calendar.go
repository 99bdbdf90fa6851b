package models

import "time"

// Season is one of the four season tags carried by the 24 solar terms.
type Season string

const (
	SeasonSpring Season = "春"
	SeasonSummer Season = "夏"
	SeasonAutumn Season = "秋"
	SeasonWinter Season = "冬"
)

// Herb is one entry of the fixed, ordered herb catalog. The catalog is
// loaded once at startup and never mutated.
type Herb struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Effect string `json:"effect"`
}

// SolarTerm is one of the 24 jieqi points of the solar calendar.
// Date is day-granular, YYYY-MM-DD.
type SolarTerm struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Season Season `json:"season"`
}

// Time returns the term's date at midnight UTC.
func (t SolarTerm) Time() time.Time {
	parsed, err := time.Parse("2006-01-02", t.Date)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// SeasonTheme is the wellness theme attached to a solar term.
type SeasonTheme struct {
	Theme string `json:"theme"`
	Color string `json:"color"`
}

// ColorPair is the display palette for a season.
type ColorPair struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
}

// DayRecord is the resolved view of a single calendar day. It is
// derived on demand and never persisted; resolving the same date twice
// always yields the same record.
type DayRecord struct {
	Date           time.Time   `json:"date"`
	Herb           Herb        `json:"herb"`
	SolarTerm      SolarTerm   `json:"solar_term"`
	Theme          SeasonTheme `json:"theme"`
	SeasonColor    ColorPair   `json:"season_color"`
	MeditationText string      `json:"meditation_text"`
	DayOfYear      int         `json:"day_of_year"`
}
