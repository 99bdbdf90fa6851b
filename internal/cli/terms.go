package cli

import (
	"fmt"
	"time"

	"github.com/hsinyuw/herbcal/internal/calendar"
)

type TermsCmd struct{}

func (c *TermsCmd) Run(ctx *Context) error {
	current := calendar.SolarTermForDate(time.Now())

	fmt.Printf("%d 年二十四節氣\n\n", calendar.AnchorYear)
	for _, term := range calendar.SolarTerms {
		marker := "  "
		if term.Name == current.Name && term.Date == current.Date {
			marker = "▶"
		}
		theme := calendar.ThemeForTerm(term.Name)
		fmt.Printf("%2s %s  %s（%s）%s\n", marker, term.Date, term.Name, term.Season, theme.Theme)
	}
	return nil
}
