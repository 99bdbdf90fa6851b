package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hsinyuw/herbcal/internal/models"
)

// Store is the on-disk layout of the JSON backend: one versioned blob
// holding settings, the single stats record, and the session log.
type Store struct {
	Version  int                        `json:"version"`
	Settings Settings                   `json:"settings"`
	Stats    models.UserStats           `json:"stats"`
	Sessions []models.MeditationSession `json:"sessions"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultStore() *Store {
	return &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Stats:    models.DefaultStats(),
		Sessions: []models.MeditationSession{},
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'herbcal init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	// Unmarshal over defaults: any field absent in stored data keeps
	// its default value, so old blobs keep loading as the schema grows.
	s.store = defaultStore()
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.store.Stats.Normalize()
	if s.store.Sessions == nil {
		s.store.Sessions = []models.MeditationSession{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetStats() (models.UserStats, error) {
	if s.store == nil {
		return models.UserStats{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Stats.Clone(), nil
}

func (s *JSONStore) SaveStats(stats models.UserStats) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	prev := s.store.Stats
	s.store.Stats = stats.Clone()
	if err := s.save(); err != nil {
		// Keep the stored copy consistent with what is actually on disk
		s.store.Stats = prev
		return err
	}
	return nil
}

func (s *JSONStore) AddSession(session models.MeditationSession) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Sessions = append(s.store.Sessions, session)
	if err := s.save(); err != nil {
		s.store.Sessions = s.store.Sessions[:len(s.store.Sessions)-1]
		return err
	}
	return nil
}

func (s *JSONStore) GetSessions(limit int) ([]models.MeditationSession, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	sessions := s.store.Sessions
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[len(sessions)-limit:]
	}

	// Newest first
	out := make([]models.MeditationSession, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		out = append(out, sessions[i])
	}
	return out, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
