package mold

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestPlacePinsRectangle(t *testing.T) {
	holes := placePins(rect(0, 0, 280, 200), DefaultParams())
	if len(holes) != 3 {
		t.Fatalf("got %d holes, want 3", len(holes))
	}
	wantX := []float64{70, 140, 210}
	for i, h := range holes {
		if !almostEqual(h.Center[0], wantX[i], 1e-9) || !almostEqual(h.Center[1], 100, 1e-9) {
			t.Errorf("hole %d at (%v, %v), want (%v, 100)", i, h.Center[0], h.Center[1], wantX[i])
		}
		if !almostEqual(h.Radius, 3, 1e-12) {
			t.Errorf("hole %d radius = %v, want 3", i, h.Radius)
		}
	}
}

func TestPlacePinsRejectsThinStock(t *testing.T) {
	// The clearance disk needs 7.2 units of lateral room; a 6-unit ribbon
	// cannot host any pin.
	if holes := placePins(rect(0, 0, 280, 6), DefaultParams()); len(holes) != 0 {
		t.Errorf("got %d holes, want 0", len(holes))
	}
}

func TestPlacePinsClearanceNotch(t *testing.T) {
	// A notch reaching down to y=102 leaves the middle candidate at
	// (140, 100) less than the 3.6-unit clearance radius of headroom.
	notched := orb.Ring{
		{0, 0}, {280, 0}, {280, 200},
		{150, 200}, {150, 102}, {130, 102}, {130, 200},
		{0, 200},
	}
	holes := placePins(notched, DefaultParams())
	if len(holes) != 2 {
		t.Fatalf("got %d holes, want 2", len(holes))
	}
	wantX := []float64{70, 210}
	for i, h := range holes {
		if !almostEqual(h.Center[0], wantX[i], 1e-9) {
			t.Errorf("hole %d at x = %v, want %v", i, h.Center[0], wantX[i])
		}
	}
}
