package cli

import (
	"fmt"
	"time"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/models"
)

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM, defaults to the current month)."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	var year int
	var month time.Month
	if c.Month == "" {
		now := time.Now()
		year, month = now.Year(), now.Month()
	} else {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	terms := calendar.MonthSolarTerms(year, month)
	fmt.Printf("%d-%02d", year, int(month))
	if len(terms) > 0 {
		fmt.Print(" · ")
		for i, term := range terms {
			if i > 0 {
				fmt.Print("、")
			}
			fmt.Printf("%s (%s)", term.Name, term.Date)
		}
	}
	fmt.Println()
	fmt.Println()

	snapshot := ctx.Engine.Stats()
	for _, rec := range calendar.MonthDays(year, month) {
		marker := "  "
		if snapshot.HasCollected(rec.Herb.Name) {
			marker = "✅"
		}
		fav := ""
		if snapshot.HasFavorite(rec.Herb.Name) {
			fav = " ❤️"
		}
		fmt.Printf("%s %s  %-4s %s%s\n",
			marker, rec.Date.Format(models.DayFormat), rec.Herb.Name, rec.Herb.Effect, fav)
	}
	return nil
}
