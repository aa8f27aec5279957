// Package dxfio reads and writes the DXF drawings the mold pipeline
// consumes and produces. Reading covers the entity families a rib
// outline is actually traced with: polylines light and heavy, lines,
// arcs, and circles. Curved geometry is flattened to straight segments
// within a sagitta tolerance. Everything else in a drawing is surfaced
// through the census rather than silently dropped.
package dxfio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"

	"github.com/indieorganic/OpenCello/geom"
)

// weldTol is the distance under which two points count as the same
// drawing coordinate.
const weldTol = 1e-6

// Polyline is one connected run of straight segments extracted from a
// drawing, in drawing coordinates. Closed runs store no duplicate end
// vertex.
type Polyline struct {
	Layer  string
	Closed bool
	Points []orb.Point
}

// Read extracts every polyline from a DXF drawing, including those nested
// in block definitions. Arc bulges are flattened with the given sagitta
// tolerance.
func Read(r io.Reader, tol float64) ([]Polyline, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("parsing drawing: %w", err)
	}

	var lines []Polyline
	for _, e := range doc.Entities.Entities {
		if pl, ok := convert(e, tol); ok {
			lines = append(lines, pl)
		}
	}
	for _, block := range doc.Blocks {
		for _, e := range block.Entities {
			if pl, ok := convert(e, tol); ok {
				lines = append(lines, pl)
			}
		}
	}
	geom.Logger().Debug("drawing read", "polylines", len(lines))
	return lines, nil
}

// ReadFile opens and reads one drawing.
func ReadFile(path string, tol float64) ([]Polyline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := Read(f, tol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// convert maps one parsed entity to a Polyline. Entities that are not
// polylines report ok=false and are left to the census.
func convert(e any, tol float64) (Polyline, bool) {
	switch ent := e.(type) {
	case *entities.Polyline:
		pl := Polyline{Layer: ent.LayerName}
		for _, v := range ent.Vertices {
			pl.Points = append(pl.Points, orb.Point{v.Location.X, v.Location.Y})
		}
		return normalize(pl)

	case *entities.LWPolyline:
		pl := Polyline{Layer: ent.LayerName, Closed: ent.Closed}
		last := len(ent.Points) - 1
		for i, v := range ent.Points {
			p := orb.Point{v.Point.X, v.Point.Y}
			pl.Points = append(pl.Points, p)
			if v.Bulge == 0 {
				continue
			}
			// A bulge on the final vertex arcs back to the start and only
			// means anything on a closed polyline.
			next := i + 1
			if i == last {
				if !ent.Closed {
					continue
				}
				next = 0
			}
			q := orb.Point{ent.Points[next].Point.X, ent.Points[next].Point.Y}
			pl.Points = append(pl.Points, bulgeArc(p, q, v.Bulge, tol)...)
		}
		return normalize(pl)

	case *entities.Line:
		pl := Polyline{Layer: ent.LayerName, Points: []orb.Point{
			{ent.Start.X, ent.Start.Y},
			{ent.End.X, ent.End.Y},
		}}
		return normalize(pl)

	case *entities.Arc:
		center := orb.Point{ent.Center.X, ent.Center.Y}
		start := ent.StartAngle * math.Pi / 180
		end := ent.EndAngle * math.Pi / 180
		// DXF arcs run counterclockwise; an end angle below the start
		// angle means the arc wraps through zero.
		if end <= start {
			end += 2 * math.Pi
		}
		pl := Polyline{Layer: ent.LayerName}
		pl.Points = append(pl.Points, arcEnd(center, ent.Radius, start))
		pl.Points = append(pl.Points, arcPoints(center, ent.Radius, start, end-start, tol)...)
		pl.Points = append(pl.Points, arcEnd(center, ent.Radius, end))
		return normalize(pl)

	case *entities.Circle:
		center := orb.Point{ent.Center.X, ent.Center.Y}
		start := orb.Point{center[0] + ent.Radius, center[1]}
		pl := Polyline{Layer: ent.LayerName, Closed: true}
		pl.Points = append([]orb.Point{start},
			arcPoints(center, ent.Radius, 0, 2*math.Pi, tol)...)
		return normalize(pl)
	}
	return Polyline{}, false
}

func arcEnd(center orb.Point, radius, angle float64) orb.Point {
	return orb.Point{
		center[0] + radius*math.Cos(angle),
		center[1] + radius*math.Sin(angle),
	}
}

// normalize welds an explicit duplicate end vertex into the closed flag
// and drops runs too short to be geometry.
func normalize(pl Polyline) (Polyline, bool) {
	n := len(pl.Points)
	if n >= 2 && near(pl.Points[0], pl.Points[n-1], weldTol) {
		pl.Points = pl.Points[:n-1]
		pl.Closed = true
		n--
	}
	if n < 2 || (pl.Closed && n < 3) {
		return Polyline{}, false
	}
	return pl, true
}

// near reports whether two points coincide within tol.
func near(a, b orb.Point, tol float64) bool {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx+dy*dy <= tol*tol
}

// Outline returns the largest closed polyline as a ring, optionally
// restricted to one layer. The ring is raw drawing geometry; callers
// normalize it before cutting.
func Outline(lines []Polyline, layer string) (orb.Ring, error) {
	best := -1
	bestArea := 0.0
	closed := 0
	for i, pl := range lines {
		if layer != "" && pl.Layer != layer {
			continue
		}
		if !pl.Closed || len(pl.Points) < 3 {
			continue
		}
		closed++
		if a := geom.Area(orb.Ring(pl.Points)); a > bestArea {
			best, bestArea = i, a
		}
	}
	if best < 0 {
		if layer != "" {
			return nil, fmt.Errorf("no closed outline on layer %q", layer)
		}
		return nil, fmt.Errorf("no closed outline in drawing")
	}
	if closed > 1 {
		geom.Logger().Debug("multiple closed outlines, keeping largest",
			"candidates", closed, "area", bestArea)
	}
	return orb.Ring(lines[best].Points), nil
}
