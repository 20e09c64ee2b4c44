// Package tui hosts fruit merge in a terminal: the Bubble Tea game model,
// the mode picker, the scoreboard and the SSH session model.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the host passes a non-positive rate.
const defaultTickRate = 60

// TickMsg drives one simulation step. Physics always advances by the game's
// fixed step, so the rate only changes how often frames are drawn.
type TickMsg time.Time

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
