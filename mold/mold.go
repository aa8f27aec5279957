// Package mold turns a traced instrument outline into the geometry of a
// two-piece rib bending mold: block flats at the neck and end, diagonal
// flats at the four bout corners, alignment pin holes, and the centerline
// split into two complementary halves.
//
// All stages run in a canonical frame with the long axis on X; the
// caller's axis convention is restored on the way out. Degraded outcomes
// (missing corners, dropped pins) are logged and survivable; an outline
// that clips away to nothing aborts with an error.
package mold

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

// Hole is a circular drill feature shared by both mold halves.
type Hole struct {
	Center orb.Point
	Radius float64
}

// Result carries the finished mold geometry in the caller's drawing
// coordinates.
type Result struct {
	// Outline is the mold boundary after all flats have been cut.
	Outline orb.Ring

	// Corners are the detected corner points the diagonal flats were
	// anchored on, up to four.
	Corners []orb.Point

	// Holes are the accepted alignment pin holes, up to three.
	Holes []Hole

	// HalfA is the half on the high-lateral side of the centerline;
	// HalfB is its complement.
	HalfA orb.Ring
	HalfB orb.Ring
}

// Generate runs the full mold pipeline on a raw outline ring.
//
// The outline is repaired and normalized first; an outline that cannot
// be made into a simple positive-area ring fails immediately. Each
// clipping stage that leaves no geometry aborts with an error wrapping
// geom.ErrEmptyClip, naming the stage that emptied the polygon.
func Generate(outline orb.Ring, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	ring, err := geom.Repair(outline)
	if err != nil {
		return nil, err
	}

	frame := geom.NewFrame(p.Axis)
	work := frame.RingIn(ring)
	log := geom.Logger()
	log.Debug("outline repaired", "vertices", len(work), "area", geom.Area(work))

	work, err = applyEndFlats(work, p)
	if err != nil {
		return nil, err
	}
	log.Debug("end flats applied", "area", geom.Area(work))

	corners := FindCorners(work)
	work, err = applyCornerFlats(work, corners, p)
	if err != nil {
		return nil, err
	}
	log.Debug("corner flats applied", "corners", len(corners), "area", geom.Area(work))

	holes := placePins(work, p)

	split := geom.NewHalfPlane(geom.Center(work.Bound()), orb.Point{0, -1})
	halfA, halfB, err := geom.SplitByLine(work, split)
	if err != nil {
		return nil, fmt.Errorf("centerline split: %w", err)
	}
	log.Debug("halves split",
		"half_a_area", geom.Area(halfA), "half_b_area", geom.Area(halfB))

	res := &Result{
		Outline: frame.RingOut(work),
		Corners: make([]orb.Point, len(corners)),
		Holes:   make([]Hole, len(holes)),
		HalfA:   frame.RingOut(halfA),
		HalfB:   frame.RingOut(halfB),
	}
	for i, c := range corners {
		res.Corners[i] = frame.Out(c)
	}
	for i, h := range holes {
		res.Holes[i] = Hole{Center: frame.Out(h.Center), Radius: h.Radius}
	}
	return res, nil
}
