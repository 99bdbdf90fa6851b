package cli

import (
	"fmt"
	"time"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/models"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	now := time.Now()
	rec := calendar.ResolveDay(now)
	printDayRecord(rec, ctx.Engine.IsFavorite(rec.Herb.Name))

	snapshot := ctx.Engine.Stats()
	if snapshot.LastMeditationDate == now.Format(models.DayFormat) {
		fmt.Println("\n✅ 今日正念已完成")
	} else {
		fmt.Println("\n⏳ 今日尚未練習，試試 'herbcal meditate'")
	}
	return nil
}
