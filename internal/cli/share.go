package cli

import (
	"fmt"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/models"
)

const shareAppURL = "https://10wang-creat.github.io/tcm-mindfulness-calendar/"

type ShareCmd struct {
	Meditation bool   `help:"Share today's completed meditation instead of the herb card."`
	Date       string `help:"Date of the herb card to share (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ShareCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	rec := calendar.ResolveDay(day)

	if c.Meditation {
		snapshot := ctx.Engine.Stats()
		streak := snapshot.CurrentStreak
		if streak < 1 {
			streak = 1
		}
		fmt.Print(meditationShareText(rec.Herb, streak))
		return nil
	}

	fmt.Print(herbShareText(rec.Herb, rec.SolarTerm))
	return nil
}

// meditationShareText matches the completed-meditation share payload.
func meditationShareText(herb models.Herb, streakDays int) string {
	return fmt.Sprintf(`🧘 我剛完成了今日正念冥想！

🌿 今日藥材：%s
✨ 功效：%s
🔥 連續 %d 天練習中

一起來體驗中藥正念日曆吧！
%s

#中藥正念 #冥想 #養生
`, herb.Name, herb.Effect, streakDays, shareAppURL)
}

// herbShareText matches the herb-card share payload.
func herbShareText(herb models.Herb, term models.SolarTerm) string {
	return fmt.Sprintf(`🌿 %s

✨ 功效：%s
📅 節氣：%s

探索更多傳統中藥智慧 👇
%s

#中藥 #養生 #傳統醫學
`, herb.Name, herb.Effect, term.Name, shareAppURL)
}
