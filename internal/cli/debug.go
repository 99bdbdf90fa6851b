package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hsinyuw/herbcal/internal/calendar"
)

type DebugCmd struct {
	StorePath *DebugStorePathCmd `cmd:"" help:"Show storage path."`
	DumpDay   *DebugDumpDayCmd   `cmd:"" help:"Dump a resolved day as JSON."`
	DumpStats *DebugDumpStatsCmd `cmd:"" help:"Dump the stats record as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date to resolve (YYYY-MM-DD or 'today')." default:"today"`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	day, err := parseDay(cmd.Date)
	if err != nil {
		return err
	}

	rec := calendar.ResolveDay(day)
	jsonBytes, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal day record: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpStatsCmd struct{}

func (cmd *DebugDumpStatsCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(ctx.Engine.Stats(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
