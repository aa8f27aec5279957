package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// eps is the tolerance used for point coincidence and side classification.
const eps = 1e-9

// Axis selects which drawing axis runs along the long dimension of an outline.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ParseAxis parses "x" or "y" (case-insensitive) into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	}
	return AxisX, fmt.Errorf("invalid axis %q: must be x or y", s)
}

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Frame maps between drawing coordinates and the canonical frame in which
// the longitudinal axis is X. The whole pipeline runs in canonical
// coordinates; results are transformed back on the way out.
type Frame struct {
	swapped bool
}

// NewFrame returns the frame for outlines whose long axis is the given
// drawing axis.
func NewFrame(longAxis Axis) Frame {
	return Frame{swapped: longAxis == AxisY}
}

// In transforms a drawing point into the canonical frame.
func (f Frame) In(p orb.Point) orb.Point {
	if f.swapped {
		return orb.Point{p[1], p[0]}
	}
	return p
}

// Out transforms a canonical point back into drawing coordinates.
// The axis swap is its own inverse.
func (f Frame) Out(p orb.Point) orb.Point {
	return f.In(p)
}

// RingIn transforms a ring into the canonical frame. An axis swap mirrors
// the plane and flips orientation, so the result is re-normalized to CCW.
func (f Frame) RingIn(r orb.Ring) orb.Ring {
	if !f.swapped {
		return r
	}
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[i] = orb.Point{p[1], p[0]}
	}
	return EnsureCCW(out)
}

// RingOut transforms a ring back into drawing coordinates, re-normalizing
// winding like RingIn.
func (f Frame) RingOut(r orb.Ring) orb.Ring {
	return f.RingIn(r)
}

// HalfPlane is the closed region on one side of a directed line. It is
// anchored at P with outward unit normal N; a point x is kept when
// (x - P) · N <= 0.
type HalfPlane struct {
	P orb.Point
	N orb.Point
}

// NewHalfPlane builds a half-plane from an anchor point and an outward
// normal. The normal need not be unit length.
func NewHalfPlane(anchor, outward orb.Point) HalfPlane {
	return HalfPlane{P: anchor, N: Unit(outward)}
}

// Signed returns the signed distance from p to the boundary line.
// Returns: > 0 outside the keep region, < 0 inside, 0 on the line.
func (h HalfPlane) Signed(p orb.Point) float64 {
	return (p[0]-h.P[0])*h.N[0] + (p[1]-h.P[1])*h.N[1]
}

// Keeps reports whether p lies in the keep region, boundary included.
func (h HalfPlane) Keeps(p orb.Point) bool {
	return h.Signed(p) <= eps
}

// Flip returns the complementary half-plane sharing the same boundary line.
func (h HalfPlane) Flip() HalfPlane {
	return HalfPlane{P: h.P, N: orb.Point{-h.N[0], -h.N[1]}}
}

// Add returns a + b.
func Add(a, b orb.Point) orb.Point {
	return orb.Point{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a - b.
func Sub(a, b orb.Point) orb.Point {
	return orb.Point{a[0] - b[0], a[1] - b[1]}
}

// Scale returns v scaled by s.
func Scale(v orb.Point, s float64) orb.Point {
	return orb.Point{v[0] * s, v[1] * s}
}

// Dot returns the dot product of two vectors.
func Dot(a, b orb.Point) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Unit returns a normalized copy of v, or the zero vector if v has no length.
func Unit(v orb.Point) orb.Point {
	length := math.Hypot(v[0], v[1])
	if length == 0 {
		return orb.Point{}
	}
	return orb.Point{v[0] / length, v[1] / length}
}

// lerp returns the point at parameter t on the segment from a to b.
func lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
}

// diagonal returns the length of b's diagonal.
func diagonal(b orb.Bound) float64 {
	return math.Hypot(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
}

// Center returns the center of a bounding box.
func Center(b orb.Bound) orb.Point {
	return orb.Point{(b.Min[0] + b.Max[0]) / 2, (b.Min[1] + b.Max[1]) / 2}
}
