// Package profile stores mold parameter sets as YAML files, so that a
// shop can keep one profile per instrument model and reuse it across
// drawings.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/indieorganic/OpenCello/geom"
	"github.com/indieorganic/OpenCello/mold"
)

// DefaultFileName is where the mold command looks for a profile when no
// path is given.
const DefaultFileName = "cello.yaml"

// Profile is the on-disk form of mold.Params. Lengths are drawing units,
// the corner angle is degrees, and axis is "x" or "y".
type Profile struct {
	Axis        string  `yaml:"axis"`
	NeckFlat    float64 `yaml:"neck_flat"`
	EndFlat     float64 `yaml:"end_flat"`
	CornerFlat  float64 `yaml:"corner_flat"`
	CornerAngle float64 `yaml:"corner_angle"`
	PinDiameter float64 `yaml:"pin_diameter"`
}

// Default returns the reference cello profile.
func Default() *Profile {
	return FromParams(mold.DefaultParams())
}

// FromParams converts pipeline parameters to their on-disk form.
func FromParams(p mold.Params) *Profile {
	return &Profile{
		Axis:        p.Axis.String(),
		NeckFlat:    p.NeckFlat,
		EndFlat:     p.EndFlat,
		CornerFlat:  p.CornerFlat,
		CornerAngle: p.CornerAngle,
		PinDiameter: p.PinDiameter,
	}
}

// Params converts the profile to pipeline parameters, validating as it
// goes. An omitted axis means the long axis is X.
func (p *Profile) Params() (mold.Params, error) {
	axis := geom.AxisX
	if p.Axis != "" {
		var err error
		axis, err = geom.ParseAxis(p.Axis)
		if err != nil {
			return mold.Params{}, err
		}
	}

	params := mold.Params{
		Axis:        axis,
		NeckFlat:    p.NeckFlat,
		EndFlat:     p.EndFlat,
		CornerFlat:  p.CornerFlat,
		CornerAngle: p.CornerAngle,
		PinDiameter: p.PinDiameter,
	}
	if err := params.Validate(); err != nil {
		return mold.Params{}, err
	}
	return params, nil
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := p.Params(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// Save writes the profile, creating parent directories as needed.
func (p *Profile) Save(path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(4)

	return encoder.Encode(p)
}
