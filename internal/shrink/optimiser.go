package shrink

import (
	"fmt"
	"io"
	"time"

	"github.com/erpl/imgshrink/internal/logger"
)

// Optimiser defines the interface for shrinking every image under a directory
type Optimiser interface {
	// Optimise transcodes all eligible images under rootDir, one at a time
	Optimise(rootDir string) (Summary, error)
}

// optimiser implements the Optimiser interface
type optimiser struct {
	transcoder Transcoder
	stats      FileStats
	out        io.Writer
}

// NewOptimiser creates an Optimiser that prints progress lines to out
func NewOptimiser(opts Options, out io.Writer) Optimiser {
	return NewOptimiserWithTranscoder(NewTranscoder(opts), out)
}

// NewOptimiserWithTranscoder creates an Optimiser with a custom transcoder
func NewOptimiserWithTranscoder(transcoder Transcoder, out io.Writer) Optimiser {
	return &optimiser{
		transcoder: transcoder,
		stats:      NewFileStats(),
		out:        out,
	}
}

func (o *optimiser) Optimise(rootDir string) (Summary, error) {
	var summary Summary

	if err := o.stats.ValidateRoot(rootDir); err != nil {
		return summary, err
	}

	total, err := o.stats.CountImages(rootDir)
	if err != nil {
		return summary, fmt.Errorf("failed to count images: %w", err)
	}
	logger.Info("Found images", "root", rootDir, "count", total)

	start := time.Now()
	err = o.stats.WalkImages(rootDir, func(path string) {
		result, err := o.transcoder.Transcode(path)
		if err != nil {
			logger.Error("Failed to compress image", "path", path, "error", err)
			return
		}
		if result == nil {
			return
		}

		summary.Add(*result)
		writeProgress(o.out, *result)
	})
	if err != nil {
		return summary, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}

	logger.Info("Optimisation finished", "compressed", summary.Compressed, "bytes_saved", summary.BytesSaved, "duration_seconds", time.Since(start).Seconds())
	return summary, nil
}
