package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ValentinPeron/gomoku-ai/internal/match"
)

// WatchModel renders a running match live. The match plays in its own
// goroutine and feeds TurnResults through the updates channel; the channel
// closing marks the end of the match. The view stays open until q.
type WatchModel struct {
	updates   <-chan match.TurnResult
	last      match.TurnResult
	haveTurn  bool
	done      bool
	startTime time.Time
}

type turnMsg match.TurnResult

type matchDoneMsg struct{}

func NewWatchModel(updates <-chan match.TurnResult) WatchModel {
	return WatchModel{updates: updates, startTime: time.Now()}
}

func waitForTurn(updates <-chan match.TurnResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-updates
		if !ok {
			return matchDoneMsg{}
		}
		return turnMsg(res)
	}
}

func (m WatchModel) Init() tea.Cmd {
	return waitForTurn(m.updates)
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case turnMsg:
		m.last = match.TurnResult(msg)
		m.haveTurn = true
		return m, waitForTurn(m.updates)
	case matchDoneMsg:
		m.done = true
		return m, nil
	}
	return m, nil
}

func (m WatchModel) View() string {
	if !m.haveTurn {
		return "Waiting for the first move...\n\nPress q to quit.\n"
	}
	s := RenderTurn(m.last)
	s += fmt.Sprintf("\nElapsed: %s", time.Since(m.startTime).Round(time.Second))
	if m.done || m.last.Status != match.StatusRunning {
		s += fmt.Sprintf("\nMatch finished: %s", m.last.Status)
	}
	s += "\n\nPress q to quit.\n"
	return s
}
