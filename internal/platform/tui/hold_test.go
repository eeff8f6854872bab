package tui

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// heldFor counts the ticks an action stays held without further presses.
func heldFor(h *HoldTracker, a core.Action) int {
	n := 0
	for h.Held(a) {
		n++
		h.Advance()
	}
	return n
}

func TestHoldTrackerWindows(t *testing.T) {
	tests := []struct {
		name    string
		action  core.Action
		presses int
		want    int
	}{
		{"single tap", core.ActionRight, 1, DefaultInitialHold},
		{"jump tap", core.ActionJump, 1, DefaultJumpHold},
		{"repeat keeps longer window", core.ActionLeft, 3, DefaultInitialHold},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHoldTracker()
			for i := 0; i < tc.presses; i++ {
				h.Press(tc.action)
			}
			if got := heldFor(h, tc.action); got != tc.want {
				t.Errorf("held for %d ticks, want %d", got, tc.want)
			}
		})
	}
}

func TestHoldTrackerAutoRepeat(t *testing.T) {
	h := NewHoldTracker()
	h.Press(core.ActionRight)

	// Repeats arrive every few ticks once the initial window is running out.
	for tick := 0; tick < 120; tick++ {
		if tick >= DefaultInitialHold-5 && tick%3 == 0 {
			h.Press(core.ActionRight)
		}
		if !h.Held(core.ActionRight) {
			t.Fatalf("released at tick %d while repeating", tick)
		}
		h.Advance()
	}

	if got := heldFor(h, core.ActionRight); got > DefaultRepeatHold {
		t.Errorf("held %d ticks after the last repeat, want at most %d", got, DefaultRepeatHold)
	}
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	h := NewHoldTracker()
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)
	h.Press(core.ActionRight)

	if h.Held(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight) || !h.Held(core.ActionJump) {
		t.Error("right and jump should be held")
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionJump) || frame.Has(core.ActionLeft) {
		t.Errorf("frame = %v", frame.Actions)
	}

	h.Reset()
	if h.Held(core.ActionRight) || h.Held(core.ActionJump) {
		t.Error("Reset should release everything")
	}
}

func TestHoldTrackerIgnoresOneShots(t *testing.T) {
	h := NewHoldTracker()
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionNone} {
		if h.Tracks(a) || h.Press(a) {
			t.Errorf("%v should not be held", a)
		}
	}

	custom := NewHoldTrackerWithWindows(map[core.Action]HoldWindow{core.ActionJump: {Initial: 1, Repeat: 1}})
	if custom.Press(core.ActionLeft) {
		t.Error("custom tracker holds only jump")
	}
	custom.Press(core.ActionJump)
	if got := heldFor(custom, core.ActionJump); got != 1 {
		t.Errorf("jump held %d ticks, want 1", got)
	}
}
