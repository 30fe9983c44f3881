// Package tui provides the Bubble Tea integration for ghostflap.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// configured period.
func tickCmd(periodMS int) tea.Cmd {
	if periodMS <= 0 {
		periodMS = 30
	}
	interval := time.Duration(periodMS) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
