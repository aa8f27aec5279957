package dxfio

import (
	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

// DefaultStitchTolerance is the endpoint gap under which two open
// polylines are considered connected, in drawing units. Traced outlines
// routinely arrive as dozens of loose segments with hairline gaps.
const DefaultStitchTolerance = 0.01

// Stitch joins open polylines whose endpoints meet within tol into longer
// chains, closing a chain when its own ends come together. Closed input
// passes through untouched; a chain that never closes is returned open.
// A joined chain keeps the layer of its first segment.
func Stitch(lines []Polyline, tol float64) []Polyline {
	var out, open []Polyline
	for _, pl := range lines {
		if pl.Closed {
			out = append(out, pl)
		} else {
			open = append(open, pl)
		}
	}

	used := make([]bool, len(open))
	for i := range open {
		if used[i] {
			continue
		}
		used[i] = true
		chain := append([]orb.Point(nil), open[i].Points...)

		for {
			extended := false
			for j := range open {
				if used[j] {
					continue
				}
				q := open[j].Points
				switch {
				case near(chain[len(chain)-1], q[0], tol):
					chain = append(chain, q[1:]...)
				case near(chain[len(chain)-1], q[len(q)-1], tol):
					chain = append(chain, reversed(q)[1:]...)
				case near(chain[0], q[len(q)-1], tol):
					chain = append(append([]orb.Point(nil), q[:len(q)-1]...), chain...)
				case near(chain[0], q[0], tol):
					chain = append(reversed(q)[:len(q)-1], chain...)
				default:
					continue
				}
				used[j] = true
				extended = true
				break
			}
			if !extended {
				break
			}
		}

		joined := Polyline{Layer: open[i].Layer, Points: dedupe(chain)}
		if n := len(joined.Points); n >= 4 && near(joined.Points[0], joined.Points[n-1], tol) {
			joined.Points = joined.Points[:n-1]
			joined.Closed = true
		}
		out = append(out, joined)
	}

	stitched := 0
	for _, pl := range out {
		if pl.Closed {
			stitched++
		}
	}
	geom.Logger().Debug("stitched polylines", "in", len(lines), "out", len(out), "closed", stitched)
	return out
}

// reversed returns a fresh copy of points in the opposite order.
func reversed(points []orb.Point) []orb.Point {
	r := make([]orb.Point, len(points))
	for i, p := range points {
		r[len(points)-1-i] = p
	}
	return r
}

// dedupe drops consecutive points welded within weldTol.
func dedupe(points []orb.Point) []orb.Point {
	if len(points) < 2 {
		return points
	}
	kept := points[:1]
	for _, p := range points[1:] {
		if near(p, kept[len(kept)-1], weldTol) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
