package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hsinyuw/herbcal/internal/calendar"
	"github.com/hsinyuw/herbcal/internal/models"
	"github.com/hsinyuw/herbcal/internal/stats"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateHerbs
	StateStats
	StateConfirmReset
)

const tabCount = 4

type Model struct {
	engine *stats.Engine
	state  SessionState
	keys   KeyMap
	help   help.Model

	today  models.DayRecord
	player player

	// Calendar tab
	month time.Time

	// Herbs tab
	cursor int

	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(engine *stats.Engine) Model {
	now := time.Now()
	return Model{
		engine: engine,
		state:  StateToday,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		today:  calendar.ResolveDay(now),
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Meditate, m.keys.Favorite)
	case StateCalendar:
		keys = append(keys, m.keys.Left, m.keys.Right)
	case StateHerbs:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Favorite)
	case StateStats:
		keys = append(keys, m.keys.Reset)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}
	actions := []key.Binding{m.keys.Meditate, m.keys.Pause, m.keys.Favorite, m.keys.Reset}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
