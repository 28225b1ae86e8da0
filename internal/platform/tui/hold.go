package tui

import "github.com/vovakirdan/tui-jumper/internal/core"

// DefaultHoldTicks is how long a single key press counts as held. Terminals
// report presses (and auto-repeat) but never releases, so movement keys are
// held until no repeat has arrived for this many ticks.
const DefaultHoldTicks = 8

// HoldTracker emulates held keys from a stream of presses.
type HoldTracker struct {
	holdTicks int
	tick      int
	until     map[core.Action]int
}

// NewHoldTracker creates a tracker. Non-positive holdTicks selects
// DefaultHoldTicks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		until:     make(map[core.Action]int),
	}
}

var holdable = [...]core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}

// Holdable reports whether an action is level-triggered movement. Other
// actions are edges and apply to a single tick.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// Press marks a holdable action as held from the current tick on. Pressing
// one horizontal direction releases the other.
func (h *HoldTracker) Press(a core.Action) {
	if !Holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = h.tick + h.holdTicks
}

// Held reports whether a is held during the current tick.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.tick < h.until[a]
}

// Apply adds every held action to the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for _, a := range holdable {
		if h.Held(a) {
			frame.Set(a)
		}
	}
}

// Advance moves to the next tick and forgets expired actions.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, until := range h.until {
		if until <= h.tick {
			delete(h.until, a)
		}
	}
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
