package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/models"
	"github.com/hsinyuw/herbcal/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateCalendar:
		content = m.viewCalendar()
	case StateHerbs:
		content = m.viewHerbs()
	case StateStats:
		content = m.viewStats()
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, docStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"今日", "月曆", "藥材", "統計"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	rec := m.today
	snapshot := m.engine.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "%s · 第 %d 天 · %s\n\n",
		rec.Date.Format(models.DayFormat), rec.DayOfYear, rec.SolarTerm.Name)

	name := titleStyle.Render("🌿 " + rec.Herb.Name)
	if snapshot.HasFavorite(rec.Herb.Name) {
		name += " ❤️"
	}
	b.WriteString(name + "\n")
	fmt.Fprintf(&b, "✨ 功效：%s\n", rec.Herb.Effect)
	fmt.Fprintf(&b, "📿 主題：%s\n\n", rec.Theme.Theme)
	b.WriteString(subtleStyle.Render(rec.MeditationText) + "\n\n")

	switch m.player.phase {
	case phaseIdle:
		if snapshot.LastMeditationDate == rec.Date.Format(models.DayFormat) {
			b.WriteString(accentStyle.Render("✅ 今日正念已完成") + "\n")
			b.WriteString(subtleStyle.Render("[m] 再冥想一次") + "\n")
		} else {
			b.WriteString(subtleStyle.Render("[m] 開始冥想") + "\n")
		}
	case phasePlaying:
		fmt.Fprintf(&b, "🧘 %s\n", m.player.clock())
		b.WriteString(subtleStyle.Render("[space] 暫停") + "\n")
	case phasePaused:
		fmt.Fprintf(&b, "⏸ %s\n", m.player.clock())
		b.WriteString(subtleStyle.Render("[space] 繼續") + "\n")
	case phaseDone:
		b.WriteString(accentStyle.Render("✅ 冥想完成") + "\n")
		b.WriteString(subtleStyle.Render("[m] 再冥想一次") + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewCalendar() string {
	year, month := m.month.Year(), m.month.Month()
	snapshot := m.engine.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "%d-%02d", year, int(month))
	if terms := calendar.MonthSolarTerms(year, month); len(terms) > 0 {
		names := make([]string, 0, len(terms))
		for _, term := range terms {
			names = append(names, fmt.Sprintf("%s %s", term.Name, term.Date[5:]))
		}
		b.WriteString(subtleStyle.Render("  " + strings.Join(names, " · ")))
	}
	b.WriteString("\n\n")

	for _, rec := range calendar.MonthDays(year, month) {
		mark := "  "
		if snapshot.HasCollected(rec.Herb.Name) {
			mark = "✅"
		}
		fav := ""
		if snapshot.HasFavorite(rec.Herb.Name) {
			fav = " ❤️"
		}
		fmt.Fprintf(&b, "%s %02d  %-4s %s%s\n",
			mark, rec.Date.Day(), rec.Herb.Name, subtleStyle.Render(rec.Herb.Effect), fav)
	}

	return docStyle.Render(b.String())
}

func (m Model) viewHerbs() string {
	snapshot := m.engine.Stats()

	// Keep the cursor visible in a simple sliding window
	window := m.height - 8
	if window < 5 {
		window = 5
	}
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}
	end := start + window
	if end > len(calendar.Herbs) {
		end = len(calendar.Herbs)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "本草圖鑑 %d/%d\n\n", len(snapshot.CollectedHerbs), len(calendar.Herbs))
	for i := start; i < end; i++ {
		herb := calendar.Herbs[i]
		line := fmt.Sprintf("%2d. %-4s %s", herb.ID, herb.Name, herb.Effect)
		if snapshot.HasCollected(herb.Name) {
			line = "✅ " + line
		} else {
			line = "   " + line
		}
		if snapshot.HasFavorite(herb.Name) {
			line += " ❤️"
		}
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewStats() string {
	snapshot := m.engine.Stats()
	level := stats.LevelFor(snapshot)

	var b strings.Builder
	b.WriteString(titleStyle.Render("修行統計") + "\n\n")
	fmt.Fprintf(&b, "冥想次數  %d\n", snapshot.TotalMeditations)
	fmt.Fprintf(&b, "累計分鐘  %d\n", snapshot.TotalMinutes)
	fmt.Fprintf(&b, "目前連續  %d 天\n", snapshot.CurrentStreak)
	fmt.Fprintf(&b, "最長連續  %d 天\n", snapshot.LongestStreak)
	fmt.Fprintf(&b, "等級 %d · %d XP", level.Level, level.XP)
	if level.XPToNext > 0 {
		fmt.Fprintf(&b, " · 距下一級 %d XP", level.XPToNext)
	}
	b.WriteString("\n\n")

	labels := []string{"日", "一", "二", "三", "四", "五", "六"}
	max := 0
	for _, count := range snapshot.WeeklyActivity {
		if count > max {
			max = count
		}
	}
	for i, count := range snapshot.WeeklyActivity {
		if i >= len(labels) {
			break
		}
		width := 0
		if max > 0 {
			width = count * 15 / max
		}
		fmt.Fprintf(&b, "%s %-15s %d\n", labels[i], strings.Repeat("█", width), count)
	}
	b.WriteString("\n")

	unlocked := 0
	statuses := stats.EvaluateAchievements(snapshot)
	for _, status := range statuses {
		if status.Unlocked {
			unlocked++
		}
	}
	fmt.Fprintf(&b, "成就 %d/%d\n", unlocked, len(statuses))
	for _, status := range statuses {
		if status.Unlocked {
			fmt.Fprintf(&b, "%s %s　%s\n", status.Icon, status.Name, subtleStyle.Render(status.Description))
		} else {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("🔒 %s　%s", status.Name, status.Description)) + "\n")
		}
	}
	b.WriteString("\n" + subtleStyle.Render("[r] 重置統計") + "\n")

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("確定要重置所有統計嗎？"),
			"",
			"[y] 重置",
			"[n] 取消",
		),
	)
}
