package mold

import (
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/indieorganic/OpenCello/geom"
)

// Corner detection tuning. Sample count and neighbor offset follow the
// reference toolchain; the candidate pool is the number of top-scoring
// samples fed into positional banding.
const (
	sampleCount    = 2500
	neighborOffset = 3
	candidatePool  = 400

	// bendFloor separates genuine curvature from floating-point noise on
	// straight runs. Samples at or below it are never corner candidates.
	bendFloor = 1e-6

	// The waist band spans the central half of the longitudinal extent.
	bandLow  = 0.25
	bandHigh = 0.75

	// Below this many in-band candidates the band filter is abandoned and
	// the full candidate pool is used instead.
	minBandCandidates = 20
)

// Score returns the bend indicator for sample i: the deviation from a
// straight line of the path through the k-th neighbors on either side.
// A locally straight run scores near 0; a full reversal approaches pi.
// Indices wrap around the closed ring.
func Score(points []orb.Point, i, k int) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	p := points[i]
	prev := points[((i-k)%n+n)%n]
	next := points[(i+k)%n]

	d := geom.Dot(geom.Unit(geom.Sub(prev, p)), geom.Unit(geom.Sub(next, p)))
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Pi - math.Acos(d)
}

// FindCorners locates up to four corner points on a ring in canonical
// coordinates (long axis = X). The outline is resampled uniformly, every
// sample is scored for bend, and the top candidates are bucketed by
// quadrant around the bounding-box center so that each quadrant
// contributes its sharpest point. Fewer than four corners is degraded but
// survivable; every shortfall and fallback is logged for manual review.
func FindCorners(r orb.Ring) []orb.Point {
	points := geom.Resample(r, sampleCount)
	if len(points) < 3 {
		return nil
	}

	scores := make([]float64, len(points))
	for i := range points {
		scores[i] = Score(points, i, neighborOffset)
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	// Keep only candidates with measurable bend. Straight-run samples can
	// pad out the pool but can never be corners.
	cands := make([]int, 0, candidatePool)
	for _, idx := range order {
		if len(cands) == candidatePool || scores[idx] <= bendFloor {
			break
		}
		cands = append(cands, idx)
	}
	if len(cands) == 0 {
		geom.Logger().Warn("no curvature detected, outline has no corners")
		return nil
	}

	bound := r.Bound()
	lo := bound.Min[0] + bandLow*(bound.Max[0]-bound.Min[0])
	hi := bound.Min[0] + bandHigh*(bound.Max[0]-bound.Min[0])

	band := make([]int, 0, len(cands))
	for _, idx := range cands {
		if x := points[idx][0]; x >= lo && x <= hi {
			band = append(band, idx)
		}
	}
	if len(band) < minBandCandidates {
		geom.Logger().Warn("waist band too sparse, using all corner candidates",
			"in_band", len(band), "candidates", len(cands))
		band = cands
	}

	center := geom.Center(bound)
	var upper, lower []int
	for _, idx := range band {
		if points[idx][1] >= center[1] {
			upper = append(upper, idx)
		} else {
			lower = append(lower, idx)
		}
	}

	corners := pickPair(points, upper, center[0], "upper")
	corners = append(corners, pickPair(points, lower, center[0], "lower")...)
	if len(corners) < 4 {
		geom.Logger().Warn("found fewer than four corners", "count", len(corners))
	}
	return corners
}

// pickPair selects the sharpest candidate on each longitudinal side of cx
// from a score-ordered group. A group with only one occupied side yields
// its two best candidates overall; an empty group yields nothing.
func pickPair(points []orb.Point, group []int, cx float64, side string) []orb.Point {
	if len(group) == 0 {
		geom.Logger().Warn("no corner candidates on one lateral side", "side", side)
		return nil
	}

	neck, end := -1, -1
	for _, idx := range group {
		if points[idx][0] >= cx {
			if neck < 0 {
				neck = idx
			}
		} else if end < 0 {
			end = idx
		}
		if neck >= 0 && end >= 0 {
			break
		}
	}
	if neck < 0 || end < 0 {
		geom.Logger().Warn("corner bucket empty, falling back to top candidates", "side", side)
		picked := []orb.Point{points[group[0]]}
		if len(group) > 1 {
			picked = append(picked, points[group[1]])
		}
		return picked
	}
	return []orb.Point{points[neck], points[end]}
}
