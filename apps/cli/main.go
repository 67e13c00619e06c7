package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erpl/imgshrink/internal/config"
	"github.com/erpl/imgshrink/internal/logger"
	"github.com/erpl/imgshrink/internal/shrink"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// assetsDir is resolved against the working directory.
const assetsDir = "assets"

var rootCmd = &cobra.Command{
	Use:     "imgshrink",
	Short:   "Resize and re-encode website images in place",
	Long:    `Imgshrink walks ./assets, resizes large PNG and JPEG files to a per-folder maximum and re-encodes them, converting PNGs without real transparency to JPEG.`,
	Version: version,
	Args:    cobra.NoArgs,
	Run:     runOptimise,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOptimise(cmd *cobra.Command, args []string) {
	settings, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.SetDebug(settings.Debug)

	if err := optimise(assetsDir, settings, cmd.OutOrStdout()); err != nil {
		if errors.Is(err, shrink.ErrRootNotFound) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: assets/ folder not found. Run from project root.")
		} else {
			logger.Error("Optimisation failed", "error", err)
		}
		os.Exit(1)
	}
}

// optimise runs the selected preset over rootDir and writes the report to out.
func optimise(rootDir string, settings config.Settings, out io.Writer) error {
	opts, err := shrink.Preset(settings.Preset)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Image Compression Tool")
	fmt.Fprintln(out)
	logger.Info("Starting optimisation", "root", rootDir, "preset", opts.Name, "jpeg_quality", opts.JPEGQuality, "min_size", opts.MinSize)

	summary, err := shrink.NewOptimiser(opts, out).Optimise(rootDir)
	if err != nil {
		return err
	}
	return summary.WriteReport(out)
}
