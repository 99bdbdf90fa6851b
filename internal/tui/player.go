package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// playerPhase is the meditation timer state. The timer only runs in
// phasePlaying; completion is what records the session.
type playerPhase int

const (
	phaseIdle playerPhase = iota
	phasePlaying
	phasePaused
	phaseDone
)

type player struct {
	phase     playerPhase
	total     time.Duration
	remaining time.Duration
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// start arms the timer for the given number of minutes.
func (p *player) start(minutes int) {
	if minutes <= 0 {
		minutes = 5
	}
	p.total = time.Duration(minutes) * time.Minute
	p.remaining = p.total
	p.phase = phasePlaying
}

// togglePause flips between playing and paused.
func (p *player) togglePause() {
	switch p.phase {
	case phasePlaying:
		p.phase = phasePaused
	case phasePaused:
		p.phase = phasePlaying
	}
}

// tick advances the timer by one second and reports whether the
// session just completed.
func (p *player) tick() (completed bool) {
	if p.phase != phasePlaying {
		return false
	}
	p.remaining -= time.Second
	if p.remaining <= 0 {
		p.remaining = 0
		p.phase = phaseDone
		return true
	}
	return false
}

// minutes returns the configured session length in whole minutes.
func (p *player) minutes() int {
	return int(p.total / time.Minute)
}

func (p *player) clock() string {
	total := int(p.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
