package geom

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func TestSignedArea(t *testing.T) {
	testCases := []struct {
		Name string
		Ring orb.Ring
		Want float64
	}{
		{
			Name: "CCW unit square",
			Ring: rect(0, 0, 1, 1),
			Want: 1,
		},
		{
			Name: "CW unit square",
			Ring: orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
			Want: -1,
		},
		{
			Name: "CCW triangle",
			Ring: orb.Ring{{0, 0}, {4, 0}, {0, 3}},
			Want: 6,
		},
		{
			Name: "too few vertices",
			Ring: orb.Ring{{0, 0}, {1, 1}},
			Want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := SignedArea(tc.Ring); !almostEqual(got, tc.Want, 1e-12) {
				t.Errorf("SignedArea = %v, want %v", got, tc.Want)
			}
		})
	}
}

func TestEnsureCCW(t *testing.T) {
	cw := orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	got := EnsureCCW(cw)
	if !IsCCW(got) {
		t.Fatal("EnsureCCW returned a clockwise ring")
	}
	// The original must stay untouched.
	if IsCCW(cw) {
		t.Error("EnsureCCW reversed its input in place")
	}

	ccw := rect(0, 0, 1, 1)
	if gotCCW := EnsureCCW(ccw); !IsCCW(gotCCW) {
		t.Error("EnsureCCW broke an already-CCW ring")
	}
}

func TestPerimeter(t *testing.T) {
	if got := Perimeter(rect(0, 0, 3, 2)); !almostEqual(got, 10, 1e-12) {
		t.Errorf("Perimeter = %v, want 10", got)
	}
}

func TestCircle(t *testing.T) {
	ring := Circle(orb.Point{10, 20}, 5, 64)
	if len(ring) != 64 {
		t.Fatalf("len(Circle) = %d, want 64", len(ring))
	}
	if !IsCCW(ring) {
		t.Error("Circle ring is not CCW")
	}
	for i, p := range ring {
		d := planar.Distance(p, orb.Point{10, 20})
		if !almostEqual(d, 5, 1e-9) {
			t.Fatalf("vertex %d at distance %v from center, want 5", i, d)
		}
	}
}

func TestRepair(t *testing.T) {
	testCases := []struct {
		Name       string
		Ring       orb.Ring
		WantLen    int
		WantErr    bool
		WantReason bool // expect an *InvalidOutlineError
	}{
		{
			Name:    "clean CCW square",
			Ring:    rect(0, 0, 10, 10),
			WantLen: 4,
		},
		{
			Name:    "closing duplicate dropped",
			Ring:    orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			WantLen: 4,
		},
		{
			Name:    "consecutive duplicates dropped",
			Ring:    orb.Ring{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}},
			WantLen: 4,
		},
		{
			Name:    "CW input normalized",
			Ring:    orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}},
			WantLen: 4,
		},
		{
			Name:       "fewer than three vertices",
			Ring:       orb.Ring{{0, 0}, {1, 1}},
			WantErr:    true,
			WantReason: true,
		},
		{
			Name:       "zero area",
			Ring:       orb.Ring{{0, 0}, {5, 0}, {10, 0}},
			WantErr:    true,
			WantReason: true,
		},
		{
			Name:       "self-intersecting bowtie",
			Ring:       orb.Ring{{0, 0}, {10, 10}, {10, 0}, {0, 10}},
			WantErr:    true,
			WantReason: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Repair(tc.Ring)
			if tc.WantErr {
				if err == nil {
					t.Fatal("Repair error = nil, want error")
				}
				if tc.WantReason {
					var invalid *InvalidOutlineError
					if !errors.As(err, &invalid) {
						t.Errorf("Repair error = %v, want *InvalidOutlineError", err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Repair error = %v", err)
			}
			if len(got) != tc.WantLen {
				t.Errorf("len(Repair) = %d, want %d", len(got), tc.WantLen)
			}
			if !IsCCW(got) {
				t.Error("Repair returned a clockwise ring")
			}
		})
	}
}

func TestSegmentsCross(t *testing.T) {
	testCases := []struct {
		Name           string
		P1, Q1, P2, Q2 orb.Point
		Want           bool
	}{
		{
			Name: "clean crossing",
			P1:   orb.Point{0, 0}, Q1: orb.Point{10, 10},
			P2: orb.Point{0, 10}, Q2: orb.Point{10, 0},
			Want: true,
		},
		{
			Name: "parallel separated",
			P1:   orb.Point{0, 0}, Q1: orb.Point{10, 0},
			P2: orb.Point{0, 5}, Q2: orb.Point{10, 5},
			Want: false,
		},
		{
			Name: "collinear overlapping",
			P1:   orb.Point{0, 0}, Q1: orb.Point{10, 0},
			P2: orb.Point{5, 0}, Q2: orb.Point{15, 0},
			Want: true,
		},
		{
			Name: "collinear disjoint",
			P1:   orb.Point{0, 0}, Q1: orb.Point{4, 0},
			P2: orb.Point{5, 0}, Q2: orb.Point{10, 0},
			Want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := segmentsCross(tc.P1, tc.Q1, tc.P2, tc.Q2); got != tc.Want {
				t.Errorf("segmentsCross = %v, want %v", got, tc.Want)
			}
		})
	}
}
