package dxfio

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

// DefaultTolerance is the sagitta allowed when an arc is approximated by
// straight segments, in drawing units.
const DefaultTolerance = 0.2

// bulgeArc expands a bulged polyline segment into the arc points strictly
// between a and b. A bulge is the tangent of a quarter of the included
// angle, positive when the arc runs counterclockwise from a to b.
func bulgeArc(a, b orb.Point, bulge, tol float64) []orb.Point {
	theta := 4 * math.Atan(bulge)
	chord := math.Hypot(b[0]-a[0], b[1]-a[1])
	if theta == 0 || chord < weldTol {
		return nil
	}

	radius := chord / (2 * math.Abs(math.Sin(theta/2)))
	// The center sits on the chord normal; the signed offset covers both
	// arc directions and arcs larger than a semicircle.
	offset := chord / (2 * math.Tan(theta/2))
	dir := geom.Unit(geom.Sub(b, a))
	mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
	center := orb.Point{mid[0] - dir[1]*offset, mid[1] + dir[0]*offset}

	start := math.Atan2(a[1]-center[1], a[0]-center[0])
	return arcPoints(center, radius, start, theta, tol)
}

// arcPoints samples an arc of the given sweep into segments whose sagitta
// stays within tol, returning the interior points only.
func arcPoints(center orb.Point, radius, start, sweep, tol float64) []orb.Point {
	if radius <= 0 || sweep == 0 {
		return nil
	}
	maxStep := math.Pi / 2
	if tol < radius {
		maxStep = 2 * math.Acos(1-tol/radius)
	}
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 1 {
		n = 1
	}
	points := make([]orb.Point, 0, n-1)
	for i := 1; i < n; i++ {
		th := start + sweep*float64(i)/float64(n)
		points = append(points, orb.Point{
			center[0] + radius*math.Cos(th),
			center[1] + radius*math.Sin(th),
		})
	}
	return points
}
