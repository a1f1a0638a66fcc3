// Package tui provides the Bubble Tea integration: the driving loop
// that feeds key presses and timer ticks into the engine and draws the
// resulting state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one autonomous simulation step.
type TickMsg time.Time

// tickCmd returns a command that emits a TickMsg after the auto-step
// interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
