package geom

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestResampleCount(t *testing.T) {
	r := rect(0, 0, 100, 100)
	for _, n := range []int{1, 4, 8, 100, 2500} {
		got := Resample(r, n)
		if len(got) != n {
			t.Errorf("len(Resample(r, %d)) = %d, want %d", n, len(got), n)
		}
	}
}

func TestResampleDeterministic(t *testing.T) {
	r := orb.Ring{{0, 0}, {120, 5}, {200, 80}, {90, 140}, {-10, 60}}

	first := Resample(r, 500)
	second := Resample(r, 500)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestResampleUniformSpacingOnSquare(t *testing.T) {
	// Perimeter 400, 8 samples: one every 50 units starting at the first
	// vertex and walking the ring in order.
	r := rect(0, 0, 100, 100)

	want := []orb.Point{
		{0, 0}, {50, 0}, {100, 0}, {100, 50},
		{100, 100}, {50, 100}, {0, 100}, {0, 50},
	}

	got := Resample(r, 8)
	for i := range want {
		if !pointsAlmostEqual(got[i], want[i], 1e-9) {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleStartsAtFirstVertex(t *testing.T) {
	r := orb.Ring{{7, 3}, {20, 3}, {20, 15}, {7, 15}}
	got := Resample(r, 10)
	if !pointsAlmostEqual(got[0], r[0], 0) {
		t.Errorf("first sample = %v, want %v", got[0], r[0])
	}
}

func TestResamplePointsLieOnBoundary(t *testing.T) {
	r := rect(0, 0, 400, 200)

	for i, p := range Resample(r, 100) {
		onVertical := (almostEqual(p[0], 0, 1e-9) || almostEqual(p[0], 400, 1e-9)) &&
			p[1] >= -1e-9 && p[1] <= 200+1e-9
		onHorizontal := (almostEqual(p[1], 0, 1e-9) || almostEqual(p[1], 200, 1e-9)) &&
			p[0] >= -1e-9 && p[0] <= 400+1e-9
		if !onVertical && !onHorizontal {
			t.Fatalf("sample %d = %v does not lie on the rectangle boundary", i, p)
		}
	}
}

func TestResampleDegenerate(t *testing.T) {
	if got := Resample(nil, 10); got != nil {
		t.Errorf("Resample(nil, 10) = %v, want nil", got)
	}
	if got := Resample(rect(0, 0, 1, 1), 0); got != nil {
		t.Errorf("Resample(r, 0) = %v, want nil", got)
	}
}
