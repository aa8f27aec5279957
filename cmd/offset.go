package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/dxfio"
	"github.com/indieorganic/OpenCello/geom"
)

var (
	offsetOut  string
	offsetDist float64
	offsetTol  float64
)

var offsetCmd = &cobra.Command{
	Use:   "offset {drawing.dxf}",
	Short: "Grow or shrink closed outlines",
	Long: `Displaces every closed outline in a drawing along its normals by the
given distance. Positive distances grow the shape, negative distances
shrink it. Use this to derive the inner mold line from a traced body
outline or to add machining allowance. The output keeps each original
outline on its own layer and puts the offset copy on the OFFSET layer;
open polylines pass through unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		path := args[0]

		lines, err := dxfio.ReadFile(path, offsetTol)
		if err != nil {
			return err
		}
		lines = dxfio.Stitch(lines, dxfio.DefaultStitchTolerance)

		var offsets []dxfio.Polyline
		for _, pl := range lines {
			if !pl.Closed || len(pl.Points) < 3 {
				continue
			}
			ring := geom.EnsureCCW(orb.Ring(pl.Points))
			offsets = append(offsets, dxfio.Polyline{
				Layer:  dxfio.LayerOffset,
				Closed: true,
				Points: []orb.Point(geom.OffsetRing(ring, offsetDist)),
			})
		}
		if len(offsets) == 0 {
			return fmt.Errorf("no closed outlines in %s", path)
		}

		out := offsetOut
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + "_offset.dxf"
		}
		if err := dxfio.WritePolylines(out, append(lines, offsets...)); err != nil {
			return err
		}
		fmt.Printf("✅ Offset %d outline(s) by %v: %s\n", len(offsets), offsetDist, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(offsetCmd)
	offsetCmd.Flags().StringVarP(&offsetOut, "out", "o", "", "Output path (default: <input>_offset.dxf)")
	offsetCmd.Flags().Float64VarP(&offsetDist, "distance", "d", 0, "Offset distance, positive grows the shape")
	offsetCmd.Flags().Float64Var(&offsetTol, "tol", dxfio.DefaultTolerance, "Arc flattening tolerance")
	offsetCmd.MarkFlagRequired("distance")
}
