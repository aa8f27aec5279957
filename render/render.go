// Package render draws raster previews of mold drawings, for a quick
// visual check without opening a CAD seat.
package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/paulmach/orb"
	"github.com/xfmoulet/qoi"

	"github.com/indieorganic/OpenCello/dxfio"
)

// Options controls the preview raster. Zero values pick usable defaults.
type Options struct {
	// Width of the output image in pixels; height follows the drawing's
	// aspect ratio.
	Width int

	// Margin around the drawing in pixels.
	Margin int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Margin <= 0 {
		o.Margin = 40
	}
	return o
}

// Drawing renders polylines to an image. Closed runs off the pin layer
// are filled as stock, pin-layer geometry is punched back out of the
// stock, and every run is stroked on top.
func Drawing(lines []dxfio.Polyline, opts Options) (image.Image, error) {
	opts = opts.withDefaults()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pl := range lines {
		if len(pl.Points) < 2 {
			continue
		}
		for _, p := range pl.Points {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
	}
	if maxX <= minX {
		return nil, fmt.Errorf("nothing to render")
	}

	scale := float64(opts.Width-2*opts.Margin) / (maxX - minX)
	height := int(math.Ceil((maxY-minY)*scale)) + 2*opts.Margin

	c := gg.NewContext(opts.Width, height)
	c.ClearWithColor(gg.White)

	// Drawing coordinates grow upward, image rows grow downward.
	trace := func(pl dxfio.Polyline) {
		for i, p := range pl.Points {
			x := float64(opts.Margin) + (p[0]-minX)*scale
			y := float64(opts.Margin) + (maxY-p[1])*scale
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		if pl.Closed {
			c.ClosePath()
		}
	}

	for _, pl := range lines {
		if !pl.Closed || pl.Layer == dxfio.LayerPins || len(pl.Points) < 3 {
			continue
		}
		trace(pl)
		c.SetRGB(0.82, 0.84, 0.86)
		if err := c.Fill(); err != nil {
			return nil, fmt.Errorf("filling stock: %w", err)
		}
	}

	for _, pl := range lines {
		if !pl.Closed || pl.Layer != dxfio.LayerPins || len(pl.Points) < 3 {
			continue
		}
		trace(pl)
		c.SetRGB(1, 1, 1)
		if err := c.Fill(); err != nil {
			return nil, fmt.Errorf("punching pin: %w", err)
		}
	}

	c.SetLineWidth(1.5)
	for _, pl := range lines {
		if len(pl.Points) < 2 {
			continue
		}
		trace(pl)
		if pl.Layer == dxfio.LayerPins {
			c.SetRGB(0.45, 0.45, 0.5)
		} else {
			c.SetRGB(0.10, 0.10, 0.12)
		}
		if err := c.Stroke(); err != nil {
			return nil, fmt.Errorf("stroking outline: %w", err)
		}
	}

	return c.Image(), nil
}

// Mold renders a drawing straight from rings and holes, bypassing DXF.
func Mold(rings []orb.Ring, holes []orb.Point, holeRadius float64, opts Options) (image.Image, error) {
	lines := make([]dxfio.Polyline, 0, len(rings)+len(holes))
	for _, r := range rings {
		lines = append(lines, dxfio.Polyline{Layer: dxfio.LayerCut, Closed: true, Points: r})
	}
	for _, h := range holes {
		circle := dxfio.Polyline{Layer: dxfio.LayerPins, Closed: true}
		const segments = 64
		for i := 0; i < segments; i++ {
			th := 2 * math.Pi * float64(i) / segments
			circle.Points = append(circle.Points, orb.Point{
				h[0] + holeRadius*math.Cos(th),
				h[1] + holeRadius*math.Sin(th),
			})
		}
		lines = append(lines, circle)
	}
	return Drawing(lines, opts)
}

// Save writes an image in the format named by the path extension,
// either .png or .qoi.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
	case ".qoi":
		if err := qoi.Encode(f, img); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported image format %q, use .png or .qoi", filepath.Ext(path))
	}
	return nil
}
