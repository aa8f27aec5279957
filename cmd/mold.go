package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/dxfio"
	"github.com/indieorganic/OpenCello/geom"
	"github.com/indieorganic/OpenCello/mold"
	"github.com/indieorganic/OpenCello/profile"
	"github.com/indieorganic/OpenCello/render"
)

var (
	moldProfile     string
	moldOut         string
	moldLayer       string
	moldAxis        string
	moldNeck        float64
	moldEnd         float64
	moldCorner      float64
	moldCornerAngle float64
	moldPinDiam     float64
	moldTol         float64
	moldPreview     bool
)

var moldCmd = &cobra.Command{
	Use:   "mold {drawing.dxf...}",
	Short: "Generate rib mold drawings from traced outlines",
	Long: `Reads each drawing, picks the largest closed outline, cuts the neck
and end block flats, detects the four rib corners and cuts their
diagonal flats, places alignment pin holes on the centerline, splits the
mold into its two halves, and writes the full outline and both halves
as separate DXF files.

Parameters come from the reference cello profile, overridden by a
profile file (--profile, or cello.yaml in the working directory) and
then by any flags set on the command line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		params, err := resolveParams(cmd)
		if err != nil {
			return err
		}

		// Each drawing is independent work, so they convert in parallel.
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			errs []string
		)
		for _, path := range args {
			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				outputs, err := generateMold(path, params)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", path, err))
					return
				}
				for _, out := range outputs {
					fmt.Printf("  %s\n", out)
				}
			}(path)
		}
		wg.Wait()

		if len(errs) > 0 {
			return fmt.Errorf("%d of %d drawings failed:\n  %s", len(errs), len(args), strings.Join(errs, "\n  "))
		}
		fmt.Printf("✅ Mold drawings written for %d outline(s)\n", len(args))
		return nil
	},
}

// generateMold runs the full pipeline for one drawing and returns the
// paths of the files it wrote.
func generateMold(path string, params mold.Params) ([]string, error) {
	// Step 1: Read the drawing and flatten its arcs.
	lines, err := dxfio.ReadFile(path, moldTol)
	if err != nil {
		return nil, err
	}

	// Step 2: Keep the requested layer and join loose segments.
	if moldLayer != "" {
		var kept []dxfio.Polyline
		for _, pl := range lines {
			if pl.Layer == moldLayer {
				kept = append(kept, pl)
			}
		}
		lines = kept
	}
	lines = dxfio.Stitch(lines, dxfio.DefaultStitchTolerance)

	outline, err := dxfio.Outline(lines, "")
	if err != nil {
		return nil, err
	}

	// Step 3: Generate the mold geometry.
	result, err := mold.Generate(outline, params)
	if err != nil {
		return nil, err
	}

	// Step 4: Write the outline and both halves.
	prefix := strings.TrimSuffix(path, filepath.Ext(path))
	if moldOut != "" {
		if err := os.MkdirAll(moldOut, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		prefix = filepath.Join(moldOut, base)
	}
	outputs, err := dxfio.WriteMold(prefix, result)
	if err != nil {
		return outputs, err
	}

	if moldPreview {
		centers := make([]orb.Point, len(result.Holes))
		for i, h := range result.Holes {
			centers[i] = h.Center
		}
		img, err := render.Mold([]orb.Ring{result.Outline}, centers, params.PinDiameter/2, render.Options{})
		if err != nil {
			return outputs, fmt.Errorf("rendering preview: %w", err)
		}
		preview := prefix + "_preview.png"
		if err := render.Save(preview, img); err != nil {
			return outputs, err
		}
		outputs = append(outputs, preview)
	}
	return outputs, nil
}

// resolveParams layers the parameter sources: reference defaults, then a
// profile file, then explicit flags.
func resolveParams(cmd *cobra.Command) (mold.Params, error) {
	params := mold.DefaultParams()

	path := moldProfile
	if path == "" {
		if _, err := os.Stat(profile.DefaultFileName); err == nil {
			path = profile.DefaultFileName
		}
	}
	if path != "" {
		prof, err := profile.Load(path)
		if err != nil {
			return mold.Params{}, fmt.Errorf("loading profile: %w", err)
		}
		params, err = prof.Params()
		if err != nil {
			return mold.Params{}, err
		}
		fmt.Printf("Using profile %s\n", path)
	}

	flags := cmd.Flags()
	if flags.Changed("axis") {
		axis, err := geom.ParseAxis(moldAxis)
		if err != nil {
			return mold.Params{}, err
		}
		params.Axis = axis
	}
	if flags.Changed("neck") {
		params.NeckFlat = moldNeck
	}
	if flags.Changed("end") {
		params.EndFlat = moldEnd
	}
	if flags.Changed("corner") {
		params.CornerFlat = moldCorner
	}
	if flags.Changed("corner-angle") {
		params.CornerAngle = moldCornerAngle
	}
	if flags.Changed("pin-diam") {
		params.PinDiameter = moldPinDiam
	}

	if err := params.Validate(); err != nil {
		return mold.Params{}, err
	}
	return params, nil
}

func init() {
	rootCmd.AddCommand(moldCmd)
	defaults := mold.DefaultParams()
	moldCmd.Flags().StringVarP(&moldProfile, "profile", "p", "", "Profile file with mold parameters")
	moldCmd.Flags().StringVarP(&moldOut, "out", "o", "", "Output directory (default: next to each input)")
	moldCmd.Flags().StringVarP(&moldLayer, "layer", "l", "", "Only read outlines from this layer")
	moldCmd.Flags().StringVar(&moldAxis, "axis", "x", "Long axis of the traced outline (x or y)")
	moldCmd.Flags().Float64Var(&moldNeck, "neck", defaults.NeckFlat, "Neck block flat depth")
	moldCmd.Flags().Float64Var(&moldEnd, "end", defaults.EndFlat, "End block flat depth")
	moldCmd.Flags().Float64Var(&moldCorner, "corner", defaults.CornerFlat, "Corner flat depth")
	moldCmd.Flags().Float64Var(&moldCornerAngle, "corner-angle", defaults.CornerAngle, "Corner flat angle in degrees")
	moldCmd.Flags().Float64Var(&moldPinDiam, "pin-diam", defaults.PinDiameter, "Alignment pin hole diameter")
	moldCmd.Flags().Float64Var(&moldTol, "tol", dxfio.DefaultTolerance, "Arc flattening tolerance")
	moldCmd.Flags().BoolVar(&moldPreview, "preview", false, "Also write a raster preview of the full mold")
}
