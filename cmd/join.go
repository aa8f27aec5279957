package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/dxfio"
)

var (
	joinOut string
	joinTol float64
)

var joinCmd = &cobra.Command{
	Use:   "join {drawing.dxf}",
	Short: "Join loose segments into closed outlines",
	Long: `Traced outlines often arrive as dozens of disconnected segments.
This reads a drawing, chains segments whose endpoints meet within the
tolerance, closes the chains whose own ends meet, and writes the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		path := args[0]

		lines, err := dxfio.ReadFile(path, dxfio.DefaultTolerance)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("no usable polylines in %s", path)
		}

		before := len(lines)
		lines = dxfio.Stitch(lines, joinTol)
		closed := 0
		for _, pl := range lines {
			if pl.Closed {
				closed++
			}
		}

		out := joinOut
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + "_joined.dxf"
		}
		if err := dxfio.WritePolylines(out, lines); err != nil {
			return err
		}
		fmt.Printf("✅ Joined %d segment(s) into %d polyline(s), %d closed: %s\n", before, len(lines), closed, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)
	joinCmd.Flags().StringVarP(&joinOut, "out", "o", "", "Output path (default: <input>_joined.dxf)")
	joinCmd.Flags().Float64Var(&joinTol, "tol", dxfio.DefaultStitchTolerance, "Maximum gap between endpoints to join")
}
