package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// Terminals report key presses and auto-repeats but never releases, so a
// held key is emulated: each press keeps the action held for a window of
// ticks and every repeat extends it. The first window has to outlast the
// OS auto-repeat delay, later ones only the repeat interval.
const (
	DefaultInitialHold = 30 // ticks, ~500ms at 60 FPS
	DefaultRepeatHold  = 8
	DefaultJumpHold    = 4
)

// HoldWindow is how many ticks one press keeps an action held.
type HoldWindow struct {
	Initial int // first press
	Repeat  int // presses while already held
}

// HoldTracker turns a stream of key presses into per-tick held state for
// the movement actions.
type HoldTracker struct {
	windows map[core.Action]HoldWindow
	left    map[core.Action]int
}

// NewHoldTracker creates a tracker with the default windows.
func NewHoldTracker() *HoldTracker {
	return NewHoldTrackerWithWindows(map[core.Action]HoldWindow{
		core.ActionLeft:  {Initial: DefaultInitialHold, Repeat: DefaultRepeatHold},
		core.ActionRight: {Initial: DefaultInitialHold, Repeat: DefaultRepeatHold},
		core.ActionJump:  {Initial: DefaultJumpHold, Repeat: DefaultRepeatHold},
	})
}

// NewHoldTrackerWithWindows creates a tracker for the given actions only.
func NewHoldTrackerWithWindows(windows map[core.Action]HoldWindow) *HoldTracker {
	return &HoldTracker{
		windows: windows,
		left:    make(map[core.Action]int, len(windows)),
	}
}

// Tracks reports whether a is emulated as a held key.
func (h *HoldTracker) Tracks(a core.Action) bool {
	_, ok := h.windows[a]
	return ok
}

// Press records a key press for a. Pressing one direction releases the
// other at once. Returns false for actions the tracker does not hold.
func (h *HoldTracker) Press(a core.Action) bool {
	w, ok := h.windows[a]
	if !ok {
		return false
	}

	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}

	if h.left[a] > 0 {
		h.left[a] = max(h.left[a], w.Repeat)
	} else {
		h.left[a] = w.Initial
	}
	return true
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.left[a] > 0
}

// Apply sets every held action on frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// Advance moves the tracker one tick forward, releasing expired keys.
func (h *HoldTracker) Advance() {
	for a := range h.left {
		h.left[a]--
		if h.left[a] <= 0 {
			delete(h.left, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.left)
}
