package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Rings are stored open: the closing edge from the last vertex back to the
// first is implicit. All area and sampling code accounts for the wrap.

// SignedArea computes the signed area of a ring.
// Positive = CCW, Negative = CW.
func SignedArea(r orb.Ring) float64 {
	if len(r) < 3 {
		return 0
	}

	var area float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += r[i][0] * r[j][1]
		area -= r[j][0] * r[i][1]
	}
	return area / 2
}

// Area returns the absolute area enclosed by r.
func Area(r orb.Ring) float64 {
	return math.Abs(SignedArea(r))
}

// IsCCW returns true if the ring has counter-clockwise winding.
func IsCCW(r orb.Ring) bool {
	return SignedArea(r) > 0
}

// EnsureCCW returns a ring with counter-clockwise winding order.
// If the ring is already CCW it is returned unchanged; otherwise a
// reversed copy is returned.
func EnsureCCW(r orb.Ring) orb.Ring {
	if IsCCW(r) {
		return r
	}

	reversed := make(orb.Ring, len(r))
	copy(reversed, r)
	reversed.Reverse()
	return reversed
}

// Perimeter returns the total boundary length of r, closing edge included.
func Perimeter(r orb.Ring) float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		sum += planar.Distance(r[i], r[(i+1)%n])
	}
	return sum
}

// Circle approximates a disk boundary as a regular CCW polygon with the
// given number of segments.
func Circle(center orb.Point, radius float64, segments int) orb.Ring {
	ring := make(orb.Ring, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = orb.Point{
			center[0] + radius*math.Cos(a),
			center[1] + radius*math.Sin(a),
		}
	}
	return ring
}

// Repair cleans a raw outline ring into the canonical form the pipeline
// requires: open, deduplicated, simple, positive area, CCW. It drops the
// closing duplicate vertex and consecutive coincident vertices, then
// rejects anything that is still degenerate.
func Repair(r orb.Ring) (orb.Ring, error) {
	if len(r) < 3 {
		return nil, &InvalidOutlineError{Reason: fmt.Sprintf("%d vertices, need at least 3", len(r))}
	}

	// Drop the explicit closing duplicate if present.
	cleaned := make(orb.Ring, 0, len(r))
	cleaned = append(cleaned, r...)
	for len(cleaned) > 1 && coincident(cleaned[0], cleaned[len(cleaned)-1]) {
		cleaned = cleaned[:len(cleaned)-1]
	}

	// Drop consecutive coincident vertices.
	deduped := cleaned[:1]
	for _, p := range cleaned[1:] {
		if !coincident(p, deduped[len(deduped)-1]) {
			deduped = append(deduped, p)
		}
	}

	if len(deduped) < 3 {
		return nil, &InvalidOutlineError{Reason: "degenerate after removing duplicate vertices"}
	}
	if Area(deduped) < eps {
		return nil, &InvalidOutlineError{Reason: "zero area"}
	}
	if i, j, ok := selfIntersection(deduped); ok {
		return nil, &InvalidOutlineError{Reason: fmt.Sprintf("self-intersecting (edges %d and %d cross)", i, j)}
	}

	return EnsureCCW(deduped), nil
}

func coincident(a, b orb.Point) bool {
	return planar.DistanceSquared(a, b) < eps*eps
}

// selfIntersection scans all non-adjacent edge pairs for a crossing.
// O(n²), acceptable for outlines of modest vertex count at pipeline entry.
func selfIntersection(r orb.Ring) (int, int, bool) {
	n := len(r)
	for i := 0; i < n; i++ {
		p1 := r[i]
		q1 := r[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges sharing a vertex with edge i.
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			p2 := r[j]
			q2 := r[(j+1)%n]
			if segmentsCross(p1, q1, p2, q2) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// orientation returns the orientation of the ordered triplet (p, q, r).
// Returns: 0 collinear, 1 clockwise, 2 counter-clockwise.
func orientation(p, q, r orb.Point) int {
	val := (q[1]-p[1])*(r[0]-q[0]) - (q[0]-p[0])*(r[1]-q[1])
	if math.Abs(val) < eps {
		return 0
	}
	if val > 0 {
		return 1
	}
	return 2
}

// onSegment reports whether q lies on segment pr, given p, q, r collinear.
func onSegment(p, q, r orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}

// segmentsCross reports whether segments p1q1 and p2q2 intersect.
func segmentsCross(p1, q1, p2, q2 orb.Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases.
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}

	return false
}
