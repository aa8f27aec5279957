package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/dxfio"
)

var (
	flattenOut string
	flattenTol float64
)

var flattenCmd = &cobra.Command{
	Use:   "flatten {drawing.dxf}",
	Short: "Expand arcs into straight segments",
	Long: `Reads a drawing and rewrites every polyline with its arc bulges and
circles expanded into straight segments within the given sagitta
tolerance. Entity types the converter does not handle are reported and
dropped so nothing disappears silently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		path := args[0]

		census, err := dxfio.TakeCensusFile(path)
		if err != nil {
			return fmt.Errorf("surveying %s: %w", path, err)
		}
		reportUnreadable(census)

		lines, err := dxfio.ReadFile(path, flattenTol)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("no usable polylines in %s", path)
		}

		out := flattenOut
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + "_flat.dxf"
		}
		if err := dxfio.WritePolylines(out, lines); err != nil {
			return err
		}
		fmt.Printf("✅ Flattened %d polyline(s): %s\n", len(lines), out)
		return nil
	},
}

// readableTypes are the entities the reader converts; everything else in
// the census is dropped on conversion.
var readableTypes = map[string]bool{
	"LWPOLYLINE": true,
	"POLYLINE":   true,
	"LINE":       true,
	"ARC":        true,
	"CIRCLE":     true,
}

func reportUnreadable(census *dxfio.Census) {
	var skipped []string
	for typ := range census.ByType {
		if !readableTypes[typ] {
			skipped = append(skipped, typ)
		}
	}
	sort.Strings(skipped)
	for _, typ := range skipped {
		fmt.Printf("Warning: dropping %d %s entities, convert them to polylines first\n", census.ByType[typ], typ)
	}
}

func init() {
	rootCmd.AddCommand(flattenCmd)
	flattenCmd.Flags().StringVarP(&flattenOut, "out", "o", "", "Output path (default: <input>_flat.dxf)")
	flattenCmd.Flags().Float64Var(&flattenTol, "tol", dxfio.DefaultTolerance, "Maximum distance between arc and segment")
}
