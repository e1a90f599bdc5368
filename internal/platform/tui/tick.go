// Package tui provides the Bubble Tea front-end for sokoban: manual play,
// automatic solution playback, and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepMsg is sent to advance automatic solution playback by one move.
type StepMsg time.Time

// stepCmd returns a Bubble Tea command that sends the next playback step
// after the configured delay.
func stepCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return StepMsg(t)
	})
}
