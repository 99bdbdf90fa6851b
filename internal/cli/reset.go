package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	snapshot := ctx.Engine.Stats()
	if !c.Force {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("重置所有統計？").
				Description(fmt.Sprintf("將清除 %d 次冥想、%d 天最長連續與 %d 種收集的藥材。",
					snapshot.TotalMeditations, snapshot.LongestStreak, len(snapshot.CollectedHerbs))).
				Affirmative("重置").
				Negative("取消").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("已取消。")
			return nil
		}
	}

	// One last backup before the data goes away
	ctx.PerformAutomaticBackup()

	if _, err := ctx.Engine.Reset(); err != nil {
		return err
	}
	fmt.Println("✓ 統計已重置。")
	return nil
}
