package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/hsinyuw/herbcal/internal/cli"
	"github.com/hsinyuw/herbcal/internal/stats"
	"github.com/hsinyuw/herbcal/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/herbcal/herbcal.db"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize herbcal storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's herb and meditation."`
	Day      cli.DayCmd      `cmd:"" help:"Show the herb for a day."`
	Month    cli.MonthCmd    `cmd:"" help:"Show a month of herbs and its solar terms."`
	Meditate cli.MeditateCmd `cmd:"" help:"Record a meditation session."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show practice statistics."`
	Herbs    cli.HerbsCmd    `cmd:"" help:"Browse the herb catalog."`
	Terms    cli.TermsCmd    `cmd:"" help:"List the 24 solar terms."`
	Fav      cli.FavCmd      `cmd:"" help:"Toggle or list favorite herbs."`
	Share    cli.ShareCmd    `cmd:"" help:"Generate share text."`
	Reset    cli.ResetCmd    `cmd:"" help:"Reset all statistics."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Debug    cli.DebugCmd    `cmd:"" help:"Inspect internal state."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("herbcal"),
		kong.Description("TCM mindfulness calendar: a herb and a meditation for every day"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Storage backend follows the file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: stats.New(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
