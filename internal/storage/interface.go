package storage

import "github.com/hsinyuw/herbcal/internal/models"

// Settings are the user-tunable knobs persisted alongside the stats
// record.
type Settings struct {
	// DefaultMinutes is credited per meditation when the caller does
	// not supply a duration.
	DefaultMinutes int `json:"default_minutes"`
	// WeeklyReset clears the weekly-activity histogram when a new ISO
	// week starts. Off by default: the histogram accumulates for the
	// app's lifetime.
	WeeklyReset bool `json:"weekly_reset"`
}

// DefaultSettings returns the settings written on init.
func DefaultSettings() Settings {
	return Settings{DefaultMinutes: 5}
}

// Provider is the persistence boundary of the stats engine. Exactly
// one UserStats record exists per store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Stats record
	GetStats() (models.UserStats, error)
	SaveStats(models.UserStats) error

	// Session log
	AddSession(models.MeditationSession) error
	GetSessions(limit int) ([]models.MeditationSession, error)

	// Utils
	GetConfigPath() string
}
