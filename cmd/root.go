package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/indieorganic/OpenCello/geom"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "opencello",
	Short: "OpenCello - Rib mold generator for bowed string instruments",
	Long: `OpenCello turns a traced instrument outline (DXF) into CNC-ready rib
bending mold drawings: block flats at the neck and end, diagonal corner
flats, alignment pin holes, and the two mold halves. It also carries the
drawing utilities a mold shop needs around that: arc flattening, segment
joining, contour offsetting, inspection, and raster previews.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if rootVerbose {
			level = slog.LevelDebug
		}
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Show stage-by-stage detail")
}
