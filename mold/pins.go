package mold

import (
	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

// pinClearance inflates the pin radius for the containment check, so
// that a pin is only placed where the drill leaves solid material around
// the full circumference.
const pinClearance = 1.2

// pinFractions are the longitudinal positions of the pin candidates,
// as fractions of the finished outline's extent.
var pinFractions = [...]float64{0.25, 0.5, 0.75}

// placePins returns the accepted alignment pin holes for the finished
// outline, in canonical coordinates. Candidates sit on the lateral
// centerline and are kept only when their inflated clearance disk lies
// entirely inside the polygon. Fewer than three pins is acceptable;
// every rejection is logged.
func placePins(r orb.Ring, p Params) []Hole {
	bound := r.Bound()
	cy := (bound.Min[1] + bound.Max[1]) / 2
	width := bound.Max[0] - bound.Min[0]
	radius := p.PinDiameter / 2

	holes := make([]Hole, 0, len(pinFractions))
	for _, f := range pinFractions {
		center := orb.Point{bound.Min[0] + f*width, cy}
		if !geom.DiskContained(r, center, radius*pinClearance) {
			geom.Logger().Warn("pin candidate rejected, clearance disk not contained",
				"fraction", f, "x", center[0], "y", center[1])
			continue
		}
		holes = append(holes, Hole{Center: center, Radius: radius})
	}
	if len(holes) < len(pinFractions) {
		geom.Logger().Warn("placed fewer than three pins", "placed", len(holes))
	}
	return holes
}
