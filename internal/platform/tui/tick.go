// Package tui provides the Bubble Tea integration for the sweeper platform.
// It runs the fixed-rate game loop, maps keys and mouse clicks to actions,
// shows the preset menu and scoreboard, and serves sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model whose loop scheduled it; models drop ticks of other loops.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out one loop generation per game model.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message for loop
// gen after a 1/tickRate interval.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
