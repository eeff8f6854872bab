package core

import "testing"

func TestRectContainsClosed(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name       string
		x, y       int
		closedEdge bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 30, 25, true},
		{"right edge", 30, 15, true},
		{"outside left", 9, 15, false},
		{"outside right", 31, 15, false},
		{"outside top", 15, 9, false},
		{"outside bottom", 15, 26, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsClosed(tc.x, tc.y); got != tc.closedEdge {
				t.Errorf("ContainsClosed(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.closedEdge)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	r := NewRect(100, 0, 40, 40)

	tests := []struct {
		x0, x1   int
		expected bool
	}{
		{60, 100, false},  // ends at left edge
		{140, 220, false}, // starts at right edge
		{60, 101, true},
		{139, 220, true},
		{110, 120, true}, // span inside the rect
		{0, 400, true},   // rect inside the span
	}

	for _, tc := range tests {
		if got := r.OverlapsX(tc.x0, tc.x1); got != tc.expected {
			t.Errorf("OverlapsX(%d, %d) = %v, expected %v", tc.x0, tc.x1, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestDivRounding(t *testing.T) {
	tests := []struct {
		a, b        int
		floor, ceil int
	}{
		{10, 4, 2, 3},
		{8, 4, 2, 2},
		{-1, 4, -1, 0},
		{-8, 4, -2, -2},
		{-9, 4, -3, -2},
		{0, 4, 0, 0},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.floor {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.floor)
		}
		if got := CeilDiv(tc.a, tc.b); got != tc.ceil {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.ceil)
		}
	}
}
