package geom

import "errors"

// Geometric failures indicate a parameter or input-data problem, never a
// transient condition, so no operation retries internally. Callers match
// these with errors.Is / errors.As; the pipeline wraps them with stage and
// parameter context.
var (
	// ErrEmptyClip reports that a half-plane clip removed all geometry.
	ErrEmptyClip = errors.New("half-plane clip left no geometry")

	// ErrSplit reports that a centerline split produced fewer than two pieces.
	ErrSplit = errors.New("split produced fewer than two pieces")
)

// InvalidOutlineError reports an input outline that cannot be repaired into
// a simple ring with positive area.
type InvalidOutlineError struct {
	Reason string
}

func (e *InvalidOutlineError) Error() string {
	return "invalid outline: " + e.Reason
}
