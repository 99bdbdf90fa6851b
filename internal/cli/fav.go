package cli

import (
	"fmt"

	"github.com/hsinyuw/herbcal/internal/calendar"
)

type FavCmd struct {
	Herb string `arg:"" optional:"" help:"Herb to toggle (empty lists favorites)."`
}

func (c *FavCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	if c.Herb == "" {
		snapshot := ctx.Engine.Stats()
		if len(snapshot.FavoriteHerbs) == 0 {
			fmt.Println("尚未收藏任何藥材。")
			return nil
		}
		fmt.Printf("收藏 (%d)\n", len(snapshot.FavoriteHerbs))
		for _, name := range snapshot.FavoriteHerbs {
			if herb, ok := calendar.HerbByName(name); ok {
				fmt.Printf("  ❤️ %-4s %s\n", herb.Name, herb.Effect)
			} else {
				fmt.Printf("  ❤️ %s\n", name)
			}
		}
		return nil
	}

	if _, ok := calendar.HerbByName(c.Herb); !ok {
		return fmt.Errorf("unknown herb: %s", c.Herb)
	}

	snapshot, err := ctx.Engine.ToggleFavorite(c.Herb)
	if err != nil {
		return err
	}
	if snapshot.HasFavorite(c.Herb) {
		fmt.Printf("❤️ 已收藏 %s\n", c.Herb)
	} else {
		fmt.Printf("💔 已取消收藏 %s\n", c.Herb)
	}
	return nil
}
