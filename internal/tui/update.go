package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hsinyuw/herbcal/internal/calendar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if completed := m.player.tick(); completed {
			snapshot, err := m.engine.RecordMeditation(m.today.Herb.Name, m.player.minutes())
			if err != nil {
				m.statusMsg = fmt.Sprintf("⚠ 儲存失敗：%v", err)
			} else {
				m.statusMsg = fmt.Sprintf("✅ 今日正念完成，連續 %d 天", snapshot.CurrentStreak)
			}
			return m, nil
		}
		if m.player.phase == phasePlaying || m.player.phase == phasePaused {
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmReset {
			return m.updateConfirmReset(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		}

		switch m.state {
		case StateToday:
			return m.updateToday(msg)
		case StateCalendar:
			return m.updateCalendar(msg)
		case StateHerbs:
			return m.updateHerbs(msg)
		case StateStats:
			return m.updateStats(msg)
		}
	}

	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Meditate), key.Matches(msg, m.keys.Enter):
		if m.player.phase == phaseIdle || m.player.phase == phaseDone {
			m.player.start(m.engine.Settings().DefaultMinutes)
			m.statusMsg = ""
			return m, tickCmd()
		}
	case key.Matches(msg, m.keys.Pause):
		m.player.togglePause()
	case key.Matches(msg, m.keys.Favorite):
		snapshot, err := m.engine.ToggleFavorite(m.today.Herb.Name)
		if err != nil {
			m.statusMsg = fmt.Sprintf("⚠ 儲存失敗：%v", err)
		} else if snapshot.HasFavorite(m.today.Herb.Name) {
			m.statusMsg = fmt.Sprintf("❤️ 已收藏 %s", m.today.Herb.Name)
		} else {
			m.statusMsg = fmt.Sprintf("💔 已取消收藏 %s", m.today.Herb.Name)
		}
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.month = m.month.AddDate(0, -1, 0)
	case key.Matches(msg, m.keys.Right):
		m.month = m.month.AddDate(0, 1, 0)
	}
	return m, nil
}

func (m Model) updateHerbs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(calendar.Herbs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Favorite):
		herb := calendar.Herbs[m.cursor]
		if _, err := m.engine.ToggleFavorite(herb.Name); err != nil {
			m.statusMsg = fmt.Sprintf("⚠ 儲存失敗：%v", err)
		}
	}
	return m, nil
}

func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Reset) {
		m.state = StateConfirmReset
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if _, err := m.engine.Reset(); err != nil {
			m.statusMsg = fmt.Sprintf("⚠ 重置失敗：%v", err)
		} else {
			m.statusMsg = "✓ 統計已重置"
		}
		m.state = StateStats
	case "n", "N", "q", "esc":
		m.state = StateStats
	}
	return m, nil
}
