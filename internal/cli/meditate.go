package cli

import (
	"fmt"
	"time"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/stats"
)

type MeditateCmd struct {
	Minutes int    `short:"m" help:"Session length in minutes (0 = configured default)."`
	Herb    string `help:"Herb to meditate with (defaults to today's herb)."`
}

func (c *MeditateCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	rec := calendar.ResolveDay(time.Now())
	herbName := c.Herb
	if herbName == "" {
		herbName = rec.Herb.Name
	} else if _, ok := calendar.HerbByName(herbName); !ok {
		return fmt.Errorf("unknown herb: %s", herbName)
	}

	before := ctx.Engine.Stats()

	snapshot, err := ctx.Engine.RecordMeditation(herbName, c.Minutes)
	if err != nil {
		return err
	}

	fmt.Printf("🧘 已記錄：%s\n", herbName)
	fmt.Printf("🔥 連續 %d 天 · 累計 %d 次 · %d 分鐘\n",
		snapshot.CurrentStreak, snapshot.TotalMeditations, snapshot.TotalMinutes)

	// Surface badges this session just unlocked
	for _, status := range stats.EvaluateAchievements(snapshot) {
		if status.Unlocked && !status.Predicate(before) {
			fmt.Printf("🏆 解鎖成就：%s %s　%s\n", status.Icon, status.Name, status.Description)
		}
	}
	return nil
}
