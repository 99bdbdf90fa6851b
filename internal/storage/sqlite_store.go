package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hsinyuw/herbcal/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps settings and the stats record as key/value rows
// and the session log as a proper table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// SchemaVersion is the database layout version this build writes and
// understands.
const SchemaVersion = 1

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stats (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		herb_name  TEXT NOT NULL,
		minutes    INTEGER NOT NULL,
		day        TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.applySchema(); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'herbcal init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", version, SchemaVersion)
	}
	if version < SchemaVersion {
		// Older databases pick up missing tables on open
		if err := s.applySchema(); err != nil {
			return fmt.Errorf("failed to upgrade schema: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) applySchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion))
	return err
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := DefaultSettings()
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "default_minutes":
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing default_minutes: %w", err)
			}
		case "weekly_reset":
			settings.WeeklyReset = value == "1"
		}
		count++
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("default_minutes", strconv.Itoa(settings.DefaultMinutes)); err != nil {
		return err
	}
	weeklyReset := "0"
	if settings.WeeklyReset {
		weeklyReset = "1"
	}
	if _, err := stmt.Exec("weekly_reset", weeklyReset); err != nil {
		return err
	}

	return tx.Commit()
}

// GetStats assembles the record from the stats key/value rows. Missing
// keys keep their defaults, so records written by older versions load
// cleanly.
func (s *SQLiteStore) GetStats() (models.UserStats, error) {
	rows, err := s.db.Query("SELECT key, value FROM stats")
	if err != nil {
		return models.UserStats{}, err
	}
	defer rows.Close()

	stats := models.DefaultStats()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.UserStats{}, err
		}
		switch key {
		case "total_meditations":
			stats.TotalMeditations, _ = strconv.Atoi(value)
		case "total_minutes":
			stats.TotalMinutes, _ = strconv.Atoi(value)
		case "current_streak":
			stats.CurrentStreak, _ = strconv.Atoi(value)
		case "longest_streak":
			stats.LongestStreak, _ = strconv.Atoi(value)
		case "last_meditation_date":
			stats.LastMeditationDate = value
		case "first_use_date":
			stats.FirstUseDate = value
		case "collected_herbs":
			if err := json.Unmarshal([]byte(value), &stats.CollectedHerbs); err != nil {
				return models.UserStats{}, fmt.Errorf("parsing collected_herbs: %w", err)
			}
		case "favorite_herbs":
			if err := json.Unmarshal([]byte(value), &stats.FavoriteHerbs); err != nil {
				return models.UserStats{}, fmt.Errorf("parsing favorite_herbs: %w", err)
			}
		case "weekly_activity":
			if err := json.Unmarshal([]byte(value), &stats.WeeklyActivity); err != nil {
				return models.UserStats{}, fmt.Errorf("parsing weekly_activity: %w", err)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return models.UserStats{}, err
	}

	stats.Normalize()
	return stats, nil
}

// SaveStats writes the full record in one transaction so a failed save
// never leaves a half-updated record behind.
func (s *SQLiteStore) SaveStats(stats models.UserStats) error {
	collected, err := json.Marshal(stats.CollectedHerbs)
	if err != nil {
		return fmt.Errorf("failed to marshal collected herbs: %w", err)
	}
	favorites, err := json.Marshal(stats.FavoriteHerbs)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite herbs: %w", err)
	}
	weekly, err := json.Marshal(stats.WeeklyActivity)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly activity: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO stats (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct{ key, value string }{
		{"total_meditations", strconv.Itoa(stats.TotalMeditations)},
		{"total_minutes", strconv.Itoa(stats.TotalMinutes)},
		{"current_streak", strconv.Itoa(stats.CurrentStreak)},
		{"longest_streak", strconv.Itoa(stats.LongestStreak)},
		{"last_meditation_date", stats.LastMeditationDate},
		{"first_use_date", stats.FirstUseDate},
		{"collected_herbs", string(collected)},
		{"favorite_herbs", string(favorites)},
		{"weekly_activity", string(weekly)},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p.key, p.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", p.key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddSession(session models.MeditationSession) error {
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, herb_name, minutes, day, created_at) VALUES (?, ?, ?, ?, ?)",
		session.ID, session.HerbName, session.Minutes, session.Day,
		session.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetSessions(limit int) ([]models.MeditationSession, error) {
	query := "SELECT id, herb_name, minutes, day, created_at FROM sessions ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.MeditationSession
	for rows.Next() {
		var sess models.MeditationSession
		var createdAt string
		if err := rows.Scan(&sess.ID, &sess.HerbName, &sess.Minutes, &sess.Day, &createdAt); err != nil {
			return nil, err
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
