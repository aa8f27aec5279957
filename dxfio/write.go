package dxfio

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"

	"github.com/indieorganic/OpenCello/geom"
	"github.com/indieorganic/OpenCello/mold"
)

// Layers used in the drawings this package writes. Cut geometry, pin
// drills and derived offset contours end up on separate layers so a CNC
// post-processor can assign tooling per layer.
const (
	LayerCut    = "CUT"
	LayerPins   = "PINS"
	LayerOffset = "OFFSET"
)

// WriteMold writes the production drawings for a finished mold next to
// the given path prefix: the full outline and both halves, each carrying
// the shared pin holes. It returns the paths written.
func WriteMold(prefix string, res *mold.Result) ([]string, error) {
	outputs := []struct {
		path string
		ring orb.Ring
	}{
		{prefix + "_full.dxf", res.Outline},
		{prefix + "_halfA.dxf", res.HalfA},
		{prefix + "_halfB.dxf", res.HalfB},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if err := WriteDrawing(out.path, []orb.Ring{out.ring}, res.Holes); err != nil {
			return paths, err
		}
		paths = append(paths, out.path)
	}
	return paths, nil
}

// WriteDrawing saves rings on the cut layer and holes on the pin layer.
// Rings are written closed, with the first vertex repeated.
func WriteDrawing(path string, rings []orb.Ring, holes []mold.Hole) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	d.AddLayer(LayerCut, color.Red, dxf.DefaultLineType, true)
	d.ChangeLayer(LayerCut)
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		lwp := entity.NewLwPolyline(len(r) + 1)
		for j, pt := range r {
			lwp.Vertices[j] = []float64{pt[0], pt[1]}
		}
		lwp.Vertices[len(r)] = []float64{r[0][0], r[0][1]}
		d.AddEntity(lwp)
	}

	if len(holes) > 0 {
		d.AddLayer(LayerPins, color.Yellow, dxf.DefaultLineType, true)
		d.ChangeLayer(LayerPins)
		for _, h := range holes {
			d.Circle(h.Center[0], h.Center[1], 0, h.Radius)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	geom.Logger().Debug("drawing written", "path", path, "rings", len(rings), "holes", len(holes))
	return nil
}

// WritePolylines saves polylines onto their own layers, preserving the
// open or closed shape of each.
func WritePolylines(path string, lines []Polyline) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	added := make(map[string]bool)
	for _, pl := range lines {
		if len(pl.Points) < 2 {
			continue
		}
		layer := pl.Layer
		if layer == "" {
			layer = LayerCut
		}
		if !added[layer] {
			col := color.White
			switch layer {
			case LayerCut, LayerOffset:
				col = color.Red
			case LayerPins:
				col = color.Yellow
			}
			d.AddLayer(layer, col, dxf.DefaultLineType, true)
			added[layer] = true
		}
		d.ChangeLayer(layer)

		points := pl.Points
		if pl.Closed {
			points = append(append([]orb.Point(nil), points...), points[0])
		}
		lwp := entity.NewLwPolyline(len(points))
		for j, pt := range points {
			lwp.Vertices[j] = []float64{pt[0], pt[1]}
		}
		d.AddEntity(lwp)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
