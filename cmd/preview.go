package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/dxfio"
	"github.com/indieorganic/OpenCello/render"
)

var (
	previewOut    string
	previewWidth  int
	previewMargin int
)

var previewCmd = &cobra.Command{
	Use:   "preview {drawing.dxf}",
	Short: "Render a drawing to an image",
	Long: `Rasterizes a drawing so it can be checked without a CAD viewer.
Closed outlines are filled as stock, pin holes are punched out, and
everything is stroked on top. Writes PNG or QOI depending on the output
extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		path := args[0]

		lines, err := dxfio.ReadFile(path, dxfio.DefaultTolerance)
		if err != nil {
			return err
		}
		lines = dxfio.Stitch(lines, dxfio.DefaultStitchTolerance)

		img, err := render.Drawing(lines, render.Options{
			Width:  previewWidth,
			Margin: previewMargin,
		})
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}

		out := previewOut
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		}
		if err := render.Save(out, img); err != nil {
			return err
		}
		fmt.Printf("✅ Preview written: %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Output image path (default: <input>.png)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "Image width in pixels")
	previewCmd.Flags().IntVar(&previewMargin, "margin", 0, "Margin around the drawing in pixels")
}
