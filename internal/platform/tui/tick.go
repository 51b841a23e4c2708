// Package tui provides the Bubble Tea frontend: the game loop, key
// mapping, the difficulty picker and the recording browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given frames per second.
// Each frame schedules its own successor, so a slow frame delays the loop
// instead of queueing ticks behind it.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
