package geom

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// clipExtentFactor sizes the finite stand-in for an unbounded
	// half-plane: the clip quad reaches this multiple of the subject's
	// bounding diagonal past the anchor.
	clipExtentFactor = 10

	// diskSegments is the polygon resolution for validation disks.
	diskSegments = 64
)

func toClip(r orb.Ring) polyclip.Polygon {
	contour := make(polyclip.Contour, len(r))
	for i, p := range r {
		contour[i] = polyclip.Point{X: p[0], Y: p[1]}
	}
	return polyclip.Polygon{contour}
}

// fromClip converts a boolean-kernel result back into rings, dropping
// degenerate contours (fewer than 3 points or vanishing area).
func fromClip(p polyclip.Polygon) []orb.Ring {
	rings := make([]orb.Ring, 0, len(p))
	for _, contour := range p {
		if len(contour) < 3 {
			continue
		}
		ring := make(orb.Ring, len(contour))
		for i, pt := range contour {
			ring[i] = orb.Point{pt.X, pt.Y}
		}
		if Area(ring) < eps {
			continue
		}
		rings = append(rings, EnsureCCW(ring))
	}
	return rings
}

// largestRing returns the ring with the greatest area.
func largestRing(rings []orb.Ring) orb.Ring {
	best := rings[0]
	bestArea := Area(best)
	for _, r := range rings[1:] {
		if a := Area(r); a > bestArea {
			best, bestArea = r, a
		}
	}
	return best
}

// keepQuad builds the finite quad standing in for hp's keep region: it
// spans ext along the boundary tangent on both sides of the anchor and
// reaches ext inward, opposite the outward normal.
func keepQuad(hp HalfPlane, ext float64) orb.Ring {
	tangent := orb.Point{-hp.N[1], hp.N[0]}
	a := Add(hp.P, Scale(tangent, ext))
	b := Sub(hp.P, Scale(tangent, ext))
	c := Sub(b, Scale(hp.N, ext))
	d := Sub(a, Scale(hp.N, ext))
	return EnsureCCW(orb.Ring{a, b, c, d})
}

// ClipHalfPlane intersects r with the keep region of hp and returns the
// result as a new ring. An empty intersection yields ErrEmptyClip; a
// multi-component intersection collapses to its largest piece with a
// warning, since the manufacturing intent is a single connected body and
// smaller fragments are numerical or topological artifacts.
func ClipHalfPlane(r orb.Ring, hp HalfPlane) (orb.Ring, error) {
	if len(r) < 3 {
		return nil, ErrEmptyClip
	}

	// The quad must reach well past the subject even when the anchor sits
	// far outside its bounds.
	bound := r.Bound()
	ext := clipExtentFactor*diagonal(bound) + planar.Distance(hp.P, Center(bound))
	if ext <= 0 {
		return nil, ErrEmptyClip
	}

	result := toClip(r).Construct(polyclip.INTERSECTION, toClip(keepQuad(hp, ext)))
	pieces := fromClip(result)
	if len(pieces) == 0 {
		return nil, ErrEmptyClip
	}

	kept := largestRing(pieces)
	if len(pieces) > 1 {
		Logger().Warn("clip produced multiple pieces, keeping largest",
			"pieces", len(pieces),
			"kept_area", Area(kept))
	}
	return kept, nil
}

// DiskContained reports whether the disk of the given radius around center
// lies entirely within r. The disk is approximated as a polygon and tested
// by area: a fully contained disk survives intersection with r unchanged.
func DiskContained(r orb.Ring, center orb.Point, radius float64) bool {
	disk := Circle(center, radius, diskSegments)
	diskArea := Area(disk)

	inter := toClip(r).Construct(polyclip.INTERSECTION, toClip(disk))
	var interArea float64
	for _, piece := range fromClip(inter) {
		interArea += Area(piece)
	}
	return interArea >= diskArea*(1-1e-7)
}
