// Package tui provides the Bubble Tea shell around the game: the fixed tick
// loop, input mapping, rendering, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// TickMsg is sent to trigger a game simulation tick. ID ties the message to
// the tick loop that scheduled it, so a loop left behind by an earlier game
// cannot drive a new one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// ConfigChangedMsg reports that the watched config file was rewritten.
type ConfigChangedMsg struct {
	Path string
}

// WatchErrorMsg carries a watcher failure. Watching continues.
type WatchErrorMsg struct {
	Err error
}

// watchCmd waits for the next watcher event. It returns nil once the
// watcher is closed, which ends the chain.
func watchCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
