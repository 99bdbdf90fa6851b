package cli

import (
	"fmt"
	"strings"

	"github.com/hsinyuw/herbcal/internal/calendar"
)

type HerbsCmd struct {
	Category  string `short:"c" help:"Filter by effect category (補氣/補血/安神/活血/清熱/其他)."`
	Search    string `short:"s" help:"Search by name or effect keyword."`
	Collected bool   `help:"Only show collected herbs."`
	Favorites bool   `help:"Only show favorite herbs."`
}

func (c *HerbsCmd) Run(ctx *Context) error {
	if c.Category != "" && !calendar.IsHerbCategory(c.Category) {
		return fmt.Errorf("unknown category: %s (expected one of %s)",
			c.Category, strings.Join(calendar.HerbCategories, "/"))
	}

	if err := ctx.loadEngine(); err != nil {
		return err
	}

	snapshot := ctx.Engine.Stats()
	shown := 0
	for _, herb := range calendar.Herbs {
		if !calendar.HerbMatchesCategory(herb, c.Category) {
			continue
		}
		if c.Search != "" && !strings.Contains(herb.Name, c.Search) && !strings.Contains(herb.Effect, c.Search) {
			continue
		}
		collected := snapshot.HasCollected(herb.Name)
		favorite := snapshot.HasFavorite(herb.Name)
		if c.Collected && !collected {
			continue
		}
		if c.Favorites && !favorite {
			continue
		}

		mark := "  "
		if collected {
			mark = "✅"
		}
		fav := ""
		if favorite {
			fav = " ❤️"
		}
		fmt.Printf("%s %2d. %-4s %s%s\n", mark, herb.ID, herb.Name, herb.Effect, fav)
		shown++
	}

	if shown == 0 {
		fmt.Println("No herbs match the filter.")
		return nil
	}
	fmt.Printf("\n%d/%d 種藥材\n", shown, len(calendar.Herbs))
	return nil
}
