package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hsinyuw/herbcal/internal/models"
	"github.com/hsinyuw/herbcal/internal/storage"
)

// TestIntegrationBackupRestoreWorkflow walks the full cycle against a
// real store: seed, back up, mutate, restore, verify.
func TestIntegrationBackupRestoreWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "herbcal.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	stats := models.DefaultStats()
	stats.TotalMeditations = 3
	stats.CollectedHerbs = []string{"人參"}
	if err := store.SaveStats(stats); err != nil {
		t.Fatalf("failed to seed stats: %v", err)
	}
	store.Close()

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Mutate past the backed-up state
	store = storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	stats, err = store.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	stats.TotalMeditations = 10
	stats.CollectedHerbs = append(stats.CollectedHerbs, "黃耆")
	if err := store.SaveStats(stats); err != nil {
		t.Fatal(err)
	}
	store.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	store = storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to open restored store: %v", err)
	}
	defer store.Close()

	restored, err := store.GetStats()
	if err != nil {
		t.Fatalf("failed to read restored stats: %v", err)
	}
	if restored.TotalMeditations != 3 {
		t.Errorf("expected 3 meditations after restore, got %d", restored.TotalMeditations)
	}
	if len(restored.CollectedHerbs) != 1 || restored.CollectedHerbs[0] != "人參" {
		t.Errorf("collection not restored: %v", restored.CollectedHerbs)
	}

	// Restore should have saved the pre-restore state as another backup
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected at least 2 backups after restore, got %d", len(backups))
	}
}

// TestBackupWithNoStore tests that backup fails gracefully when the store doesn't exist
func TestBackupWithNoStore(t *testing.T) {
	nonExistent := filepath.Join(t.TempDir(), "nonexistent.db")

	mgr := NewManager(nonExistent)
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when backing up non-existent store")
	}
}

// TestRestoreWithCorruptedBackup tests restore fails for corrupted backup
func TestRestoreWithCorruptedBackup(t *testing.T) {
	dbPath := setupSQLiteStore(t)

	mgr := NewManager(dbPath)

	corruptedPath := filepath.Join(mgr.GetBackupDir(), "corrupted.db")
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	if err := os.WriteFile(corruptedPath, []byte("not a valid sqlite database"), 0600); err != nil {
		t.Fatalf("failed to create corrupted file: %v", err)
	}

	if err := mgr.RestoreBackup(corruptedPath); err == nil {
		t.Error("expected error when restoring from corrupted backup")
	}
}

// TestBackupDirectoryCreation tests that backup directory is created if it doesn't exist
func TestBackupDirectoryCreation(t *testing.T) {
	dbPath := setupSQLiteStore(t)

	mgr := NewManager(dbPath)

	os.RemoveAll(mgr.GetBackupDir())

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(mgr.GetBackupDir()); os.IsNotExist(err) {
		t.Error("backup directory was not created")
	}
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Error("backup file was not created")
	}
}
