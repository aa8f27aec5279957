package geom

import (
	"github.com/paulmach/orb"
)

// miterCosFloor caps the miter length at sharp vertices: the cosine of the
// half-angle is clamped so a near-reversal cannot shoot a vertex out to
// infinity.
const miterCosFloor = 0.1

// OffsetRing returns a copy of r with every vertex displaced along its
// miter direction, the average of the outward normals of its two incident
// edges scaled to preserve edge distance. For a CCW ring a positive d
// expands outward and a negative d shrinks inward. Vertices are moved
// individually; the result is not checked for self-intersection, which
// matches how drawing offsets behave when the distance exceeds a local
// feature size.
func OffsetRing(r orb.Ring, d float64) orb.Ring {
	n := len(r)
	if n < 3 {
		out := make(orb.Ring, n)
		copy(out, r)
		return out
	}

	out := make(orb.Ring, n)
	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]

		n1 := edgeNormal(prev, cur)
		n2 := edgeNormal(cur, next)

		miter := Unit(Add(n1, n2))
		if miter == (orb.Point{}) {
			// Edges reverse direction exactly; fall back to one normal.
			miter = n2
		}
		cosHalf := Dot(miter, n2)
		if cosHalf < miterCosFloor {
			cosHalf = miterCosFloor
		}
		out[i] = Add(cur, Scale(miter, d/cosHalf))
	}
	return out
}

// edgeNormal returns the outward unit normal of the edge a→b on a CCW ring.
func edgeNormal(a, b orb.Point) orb.Point {
	return Unit(orb.Point{b[1] - a[1], a[0] - b[0]})
}
