package cmd

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/dxfio"
	"github.com/indieorganic/OpenCello/geom"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect {drawing.dxf}",
	Short: "Summarize a drawing before molding it",
	Long: `Counts every entity and layer in a drawing, reports how much of it
the converter can use, and measures the largest closed outline. Run this
first when a trace refuses to mold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		path := args[0]

		census, err := dxfio.TakeCensusFile(path)
		if err != nil {
			return fmt.Errorf("surveying %s: %w", path, err)
		}

		lines, err := dxfio.ReadFile(path, dxfio.DefaultTolerance)
		if err != nil {
			return err
		}
		lines = dxfio.Stitch(lines, dxfio.DefaultStitchTolerance)

		fmt.Printf("🔍 %s\n\n", path)

		fmt.Println("Entities:")
		for _, typ := range sortedKeys(census.ByType) {
			fmt.Printf("  %-14s %d\n", typ, census.ByType[typ])
		}
		fmt.Println("Layers:")
		for _, layer := range sortedKeys(census.ByLayer) {
			fmt.Printf("  %-14s %d\n", layer, census.ByLayer[layer])
		}

		closed := 0
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		var largest orb.Ring
		for _, pl := range lines {
			if pl.Closed {
				closed++
				ring := orb.Ring(pl.Points)
				if largest == nil || math.Abs(geom.Area(ring)) > math.Abs(geom.Area(largest)) {
					largest = ring
				}
			}
			for _, p := range pl.Points {
				minX = math.Min(minX, p[0])
				minY = math.Min(minY, p[1])
				maxX = math.Max(maxX, p[0])
				maxY = math.Max(maxY, p[1])
			}
		}

		fmt.Printf("\nConverted %d polyline(s), %d closed\n", len(lines), closed)
		if maxX > minX {
			fmt.Printf("Extents %.2f x %.2f\n", maxX-minX, maxY-minY)
		}
		if largest != nil {
			fmt.Printf("Largest outline: %d vertices, area %.2f, perimeter %.2f\n",
				len(largest), math.Abs(geom.Area(largest)), geom.Perimeter(largest))
		} else {
			fmt.Println("No closed outline, try the join command")
		}
		return nil
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
