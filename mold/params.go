package mold

import (
	"fmt"

	"github.com/indieorganic/OpenCello/geom"
)

// Params holds the manufacturing parameters for one mold run. All lengths
// are in drawing units (mm in the reference profiles); CornerAngle is in
// degrees, measured from the longitudinal axis.
type Params struct {
	// Axis is the drawing axis running along the long dimension of the
	// outline.
	Axis geom.Axis

	// NeckFlat is the depth of the neck-block flat cut from the high end
	// of the long axis.
	NeckFlat float64

	// EndFlat is the depth of the end-block flat cut from the low end.
	EndFlat float64

	// CornerFlat is the depth of each corner-block flat, measured from the
	// detected corner point along the inward cut normal.
	CornerFlat float64

	// CornerAngle is the direction of the corner cut normals.
	CornerAngle float64

	// PinDiameter is the drill diameter of the alignment pin holes.
	PinDiameter float64
}

// DefaultParams returns the reference cello mold parameters.
func DefaultParams() Params {
	return Params{
		Axis:        geom.AxisX,
		NeckFlat:    62,
		EndFlat:     58,
		CornerFlat:  34,
		CornerAngle: 45,
		PinDiameter: 6,
	}
}

// Validate checks every parameter before the pipeline runs. Geometry
// failures downstream indicate configuration problems; this catches the
// plainly unusable values up front.
func (p Params) Validate() error {
	if p.NeckFlat <= 0 {
		return fmt.Errorf("neck flat depth must be positive, got %v", p.NeckFlat)
	}
	if p.EndFlat <= 0 {
		return fmt.Errorf("end flat depth must be positive, got %v", p.EndFlat)
	}
	if p.CornerFlat <= 0 {
		return fmt.Errorf("corner flat depth must be positive, got %v", p.CornerFlat)
	}
	if p.CornerAngle <= 0 || p.CornerAngle >= 90 {
		return fmt.Errorf("corner angle must be strictly between 0 and 90 degrees, got %v", p.CornerAngle)
	}
	if p.PinDiameter <= 0 {
		return fmt.Errorf("pin diameter must be positive, got %v", p.PinDiameter)
	}
	return nil
}
