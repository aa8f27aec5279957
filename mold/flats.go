package mold

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

// applyEndFlats clips the two longitudinal block flats: the neck flat at
// the high end of the long axis, then the end flat at the low end. Both
// anchors derive from the bounding box of the incoming ring.
func applyEndFlats(r orb.Ring, p Params) (orb.Ring, error) {
	bound := r.Bound()
	cy := (bound.Min[1] + bound.Max[1]) / 2

	neck := geom.NewHalfPlane(orb.Point{bound.Max[0] - p.NeckFlat, cy}, orb.Point{1, 0})
	out, err := geom.ClipHalfPlane(r, neck)
	if err != nil {
		return nil, fmt.Errorf("neck flat at depth %v: %w", p.NeckFlat, err)
	}

	end := geom.NewHalfPlane(orb.Point{bound.Min[0] + p.EndFlat, cy}, orb.Point{-1, 0})
	out, err = geom.ClipHalfPlane(out, end)
	if err != nil {
		return nil, fmt.Errorf("end flat at depth %v: %w", p.EndFlat, err)
	}
	return out, nil
}

// applyCornerFlats clips one diagonal flat per detected corner. The cut
// normal points away from the bounding-box center into the corner's
// quadrant; the quadrant signs are fixed once, against the polygon as it
// stands after the end flats, so that earlier corner cuts cannot shift
// the reference frame for later ones.
func applyCornerFlats(r orb.Ring, corners []orb.Point, p Params) (orb.Ring, error) {
	center := geom.Center(r.Bound())
	angle := p.CornerAngle * math.Pi / 180

	out := r
	for i, c := range corners {
		sx, sy := 1.0, 1.0
		if c[0] < center[0] {
			sx = -1
		}
		if c[1] < center[1] {
			sy = -1
		}

		normal := orb.Point{sx * math.Cos(angle), sy * math.Sin(angle)}
		anchor := geom.Sub(c, geom.Scale(normal, p.CornerFlat))

		var err error
		out, err = geom.ClipHalfPlane(out, geom.NewHalfPlane(anchor, normal))
		if err != nil {
			return nil, fmt.Errorf("corner flat %d at (%.2f, %.2f): %w", i+1, c[0], c[1], err)
		}
	}
	return out, nil
}
