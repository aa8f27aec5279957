package mold

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

func almostEqual(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func rect(x0, y0, x1, y1 float64) orb.Ring {
	return orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// diagonalEdges returns the lengths of outline edges that are neither
// horizontal nor vertical, after merging runs of collinear vertices left
// behind by clipping.
func diagonalEdges(r orb.Ring) []float64 {
	n := len(r)
	merged := make(orb.Ring, 0, n)
	for i := 0; i < n; i++ {
		prev := r[((i-1)%n+n)%n]
		next := r[(i+1)%n]
		d1 := geom.Sub(r[i], prev)
		d2 := geom.Sub(next, r[i])
		if math.Abs(d1[0]*d2[1]-d1[1]*d2[0]) < 1e-6 {
			continue
		}
		merged = append(merged, r[i])
	}
	var lengths []float64
	for i := range merged {
		a, b := merged[i], merged[(i+1)%len(merged)]
		dx, dy := math.Abs(b[0]-a[0]), math.Abs(b[1]-a[1])
		if dx > 1e-6 && dy > 1e-6 {
			lengths = append(lengths, math.Hypot(dx, dy))
		}
	}
	return lengths
}

func TestGenerateRectangleMold(t *testing.T) {
	res, err := Generate(rect(0, 0, 400, 200), DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	bound := res.Outline.Bound()
	if got, want := bound.Max[0]-bound.Min[0], 400.0-62-58; !almostEqual(got, want, 1e-9) {
		t.Errorf("longitudinal extent = %v, want %v", got, want)
	}

	if got := len(res.Corners); got != 4 {
		t.Errorf("got %d corners, want 4", got)
	}

	diag := diagonalEdges(res.Outline)
	if got := len(diag); got != 4 {
		t.Fatalf("got %d diagonal edges, want 4 (lengths %v)", got, diag)
	}
	for _, l := range diag {
		// A 34-deep cut at 45 degrees across a right angle leaves an edge
		// of about 68 units; allow slack for the sampled corner anchor.
		if l < 50 || l > 85 {
			t.Errorf("diagonal edge length = %v, want about 68", l)
		}
	}

	if got := len(res.Holes); got != 3 {
		t.Fatalf("got %d pin holes, want 3", got)
	}
	wantX := []float64{128, 198, 268}
	for i, h := range res.Holes {
		if !almostEqual(h.Center[0], wantX[i], 1e-9) {
			t.Errorf("hole %d at x = %v, want %v", i, h.Center[0], wantX[i])
		}
		if !almostEqual(h.Center[1], 100, 1e-9) {
			t.Errorf("hole %d off the lateral centerline: y = %v", i, h.Center[1])
		}
		if !almostEqual(h.Radius, 3, 1e-12) {
			t.Errorf("hole %d radius = %v, want 3", i, h.Radius)
		}
	}

	total := geom.Area(res.Outline)
	areaA, areaB := geom.Area(res.HalfA), geom.Area(res.HalfB)
	if math.Abs(areaA-areaB) > 0.01*total {
		t.Errorf("halves out of balance: %v vs %v", areaA, areaB)
	}
	if !almostEqual(areaA+areaB, total, total*1e-6) {
		t.Errorf("halves sum to %v, want %v", areaA+areaB, total)
	}
}

func TestGenerateOverdeepFlats(t *testing.T) {
	p := DefaultParams()
	p.NeckFlat = 350 // leaves less than the end flat needs
	_, err := Generate(rect(0, 0, 400, 200), p)
	if !errors.Is(err, geom.ErrEmptyClip) {
		t.Fatalf("err = %v, want ErrEmptyClip", err)
	}
}

func TestGenerateAxisEquivalence(t *testing.T) {
	outline := rect(0, 0, 400, 200)
	resX, err := Generate(outline, DefaultParams())
	if err != nil {
		t.Fatalf("Generate axis=x: %v", err)
	}

	swapped := make(orb.Ring, len(outline))
	for i, pt := range outline {
		swapped[i] = orb.Point{pt[1], pt[0]}
	}
	pY := DefaultParams()
	pY.Axis = geom.AxisY
	resY, err := Generate(swapped, pY)
	if err != nil {
		t.Fatalf("Generate axis=y: %v", err)
	}

	bx, by := resX.Outline.Bound(), resY.Outline.Bound()
	if !almostEqual(by.Max[1]-by.Min[1], bx.Max[0]-bx.Min[0], 1e-9) {
		t.Errorf("axis=y longitudinal extent = %v, want %v", by.Max[1]-by.Min[1], bx.Max[0]-bx.Min[0])
	}

	if len(resY.Holes) != len(resX.Holes) {
		t.Fatalf("got %d holes on axis=y, want %d", len(resY.Holes), len(resX.Holes))
	}
	for i := range resY.Holes {
		got := resY.Holes[i].Center
		want := orb.Point{resX.Holes[i].Center[1], resX.Holes[i].Center[0]}
		if !almostEqual(got[0], want[0], 1e-9) || !almostEqual(got[1], want[1], 1e-9) {
			t.Errorf("hole %d at (%v, %v), want (%v, %v)", i, got[0], got[1], want[0], want[1])
		}
	}

	// Corner anchors come from sampled points and the sampling walk starts
	// at a different vertex after the swap, so areas match only loosely.
	ax, ay := geom.Area(resX.Outline), geom.Area(resY.Outline)
	if math.Abs(ax-ay) > 0.01*ax {
		t.Errorf("axis=y area = %v, axis=x area = %v, want within 1%%", ay, ax)
	}
}

func TestGenerateThinRibbonDropsPins(t *testing.T) {
	res, err := Generate(rect(0, 0, 400, 6), DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Holes) != 0 {
		t.Errorf("got %d pin holes on a 6-unit ribbon, want 0", len(res.Holes))
	}
}

func TestGenerateInvalidOutline(t *testing.T) {
	bowtie := orb.Ring{{0, 0}, {10, 10}, {10, 0}, {0, 10}}
	_, err := Generate(bowtie, DefaultParams())
	var invalid *geom.InvalidOutlineError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidOutlineError", err)
	}
}

func TestGenerateBadParams(t *testing.T) {
	p := DefaultParams()
	p.PinDiameter = 0
	if _, err := Generate(rect(0, 0, 400, 200), p); err == nil {
		t.Fatal("expected an error for a zero pin diameter")
	}
}
