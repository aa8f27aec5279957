package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Resample returns n points spaced uniformly by arclength along r,
// starting at the ring's first vertex and proceeding in ring order. The
// closing edge is part of the walk but the closing duplicate point is not
// emitted. The input ring is never modified.
//
// Deterministic: the same ring and n always produce the same sequence.
func Resample(r orb.Ring, n int) []orb.Point {
	if n <= 0 || len(r) == 0 {
		return nil
	}

	m := len(r)
	segs := make([]float64, m)
	var total float64
	for i := 0; i < m; i++ {
		segs[i] = planar.Distance(r[i], r[(i+1)%m])
		total += segs[i]
	}
	if total < eps {
		// All vertices coincide; every sample lands on the first.
		out := make([]orb.Point, n)
		for i := range out {
			out[i] = r[0]
		}
		return out
	}

	out := make([]orb.Point, 0, n)
	seg := 0
	segStart := 0.0
	for i := 0; i < n; i++ {
		target := total * float64(i) / float64(n)
		for seg < m-1 && segStart+segs[seg] < target {
			segStart += segs[seg]
			seg++
		}
		t := 0.0
		if segs[seg] > 0 {
			t = (target - segStart) / segs[seg]
		}
		out = append(out, lerp(r[seg], r[(seg+1)%m], t))
	}
	return out
}
