package cli

import (
	"fmt"
	"strings"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/stats"
)

type StatsCmd struct {
	Sessions int `help:"How many recent sessions to show." default:"5"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}

	snapshot := ctx.Engine.Stats()

	fmt.Println("修行統計")
	fmt.Println()
	fmt.Printf("  冥想次數   %d\n", snapshot.TotalMeditations)
	fmt.Printf("  累計分鐘   %d\n", snapshot.TotalMinutes)
	fmt.Printf("  目前連續   %d 天\n", snapshot.CurrentStreak)
	fmt.Printf("  最長連續   %d 天\n", snapshot.LongestStreak)
	if snapshot.FirstUseDate != "" {
		fmt.Printf("  開始日期   %s\n", snapshot.FirstUseDate)
	}

	level := stats.LevelFor(snapshot)
	fmt.Println()
	fmt.Printf("  等級 %d · %d XP", level.Level, level.XP)
	if level.XPToNext > 0 {
		fmt.Printf(" · 距下一級 %d XP", level.XPToNext)
	}
	fmt.Println()

	total := len(calendar.Herbs)
	collected := len(snapshot.CollectedHerbs)
	fmt.Printf("  藥材收集   %d/%d (%.0f%%)\n", collected, total, float64(collected)/float64(total)*100)

	fmt.Println()
	fmt.Println("每週活動")
	printWeeklyBars(snapshot.WeeklyActivity)

	fmt.Println()
	unlockedTotal := 0
	defs := stats.EvaluateAchievements(snapshot)
	for _, status := range defs {
		if status.Unlocked {
			unlockedTotal++
		}
	}
	fmt.Printf("成就 %d/%d\n", unlockedTotal, len(defs))
	for _, status := range defs {
		mark := "  "
		if status.Unlocked {
			mark = status.Icon
		}
		fmt.Printf("  %s %s　%s\n", mark, status.Name, status.Description)
	}

	if c.Sessions > 0 {
		sessions, err := ctx.Engine.RecentSessions(c.Sessions)
		if err != nil {
			return fmt.Errorf("failed to read session log: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("最近練習")
			for _, sess := range sessions {
				fmt.Printf("  %s  %-4s %d 分鐘\n", sess.Day, sess.HerbName, sess.Minutes)
			}
		}
	}

	return nil
}

// printWeeklyBars renders the Sunday-first histogram as text bars.
func printWeeklyBars(weekly []int) {
	labels := []string{"日", "一", "二", "三", "四", "五", "六"}
	max := 0
	for _, count := range weekly {
		if count > max {
			max = count
		}
	}
	for i, count := range weekly {
		if i >= len(labels) {
			break
		}
		width := 0
		if max > 0 {
			width = count * 20 / max
		}
		fmt.Printf("  %s %-20s %d\n", labels[i], strings.Repeat("█", width), count)
	}
}
