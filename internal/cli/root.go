package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hsinyuw/herbcal/internal/backup"
	"github.com/hsinyuw/herbcal/internal/models"
	"github.com/hsinyuw/herbcal/internal/stats"
	"github.com/hsinyuw/herbcal/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *stats.Engine
}

// loadEngine loads the store and the stats engine on top of it. Most
// commands start here.
func (ctx *Context) loadEngine() error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	return ctx.Engine.Load()
}

// PerformAutomaticBackup creates a backup silently. Failures are
// warnings: a missed backup must never block the command that
// triggered it.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// parseDay resolves a date argument: "today", an offset like
// "yesterday", or YYYY-MM-DD.
func parseDay(arg string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1), nil
	}
	day, err := time.Parse(models.DayFormat, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return day, nil
}

// printDayRecord renders one resolved day in the shared text layout.
func printDayRecord(rec models.DayRecord, favorite bool) {
	star := ""
	if favorite {
		star = " ❤️"
	}
	fmt.Printf("%s · 第 %d 天 · %s\n\n", rec.Date.Format(models.DayFormat), rec.DayOfYear, rec.SolarTerm.Name)
	fmt.Printf("🌿 %s%s\n", rec.Herb.Name, star)
	fmt.Printf("✨ 功效：%s\n", rec.Herb.Effect)
	fmt.Printf("📿 主題：%s\n\n", rec.Theme.Theme)
	fmt.Println(rec.MeditationText)
}
