package geom

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// SplitByLine divides r along the boundary line of hp into the piece on
// the keep side and the piece on the far side. Both half-planes are
// closed, so the two pieces share the cut edge and their areas sum to the
// original. A side left without material yields ErrSplit; extra fragments
// on a side collapse to the largest with a warning, the same policy as
// ClipHalfPlane.
func SplitByLine(r orb.Ring, hp HalfPlane) (keep, far orb.Ring, err error) {
	keep, err = ClipHalfPlane(r, hp)
	if err != nil {
		if errors.Is(err, ErrEmptyClip) {
			return nil, nil, fmt.Errorf("keep side empty: %w", ErrSplit)
		}
		return nil, nil, err
	}

	far, err = ClipHalfPlane(r, hp.Flip())
	if err != nil {
		if errors.Is(err, ErrEmptyClip) {
			return nil, nil, fmt.Errorf("far side empty: %w", ErrSplit)
		}
		return nil, nil, err
	}

	return keep, far, nil
}
