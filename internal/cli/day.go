package cli

import (
	"github.com/hsinyuw/herbcal/internal/calendar"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	rec := calendar.ResolveDay(day)
	printDayRecord(rec, ctx.Engine.IsFavorite(rec.Herb.Name))
	return nil
}
