// Package tui provides the Bubble Tea frontend for Neon Dodger.
// It maps keys and mouse taps to actions, drives the simulation loop from
// tick messages and renders snapshots into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to request the next simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after 1/tickRate seconds.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
