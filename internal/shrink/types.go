package shrink

import "fmt"

// Options holds the compression policy for a run.
type Options struct {
	// Name identifies the preset the options were loaded from.
	Name string `yaml:"name"`
	// Dimensions bounds the output size per asset folder.
	Dimensions DimensionPolicy `yaml:"dimensions"`
	// JPEGQuality is the quality level for JPEG encoding (1-100).
	JPEGQuality int `yaml:"jpeg_quality"`
	// MinSize is the smallest file size in bytes worth processing.
	MinSize int64 `yaml:"min_size"`
	// StrictTransparency requires at least one non-opaque pixel before a PNG
	// is kept as PNG. Without it any alpha channel is enough.
	StrictTransparency bool `yaml:"strict_transparency"`
}

// Validate reports the first invalid setting.
func (o Options) Validate() error {
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", o.JPEGQuality)
	}
	if o.MinSize < 0 {
		return fmt.Errorf("min size must not be negative, got %d", o.MinSize)
	}
	if err := o.Dimensions.Validate(); err != nil {
		return fmt.Errorf("invalid dimensions: %w", err)
	}
	return nil
}

// Result describes one transcoded file.
type Result struct {
	OriginalPath string
	OriginalSize int64
	FinalPath    string
	FinalSize    int64
}

// Saved returns the bytes saved, negative if the file grew.
func (r Result) Saved() int64 {
	return r.OriginalSize - r.FinalSize
}

// Renamed reports whether the output landed at a different path.
func (r Result) Renamed() bool {
	return r.OriginalPath != r.FinalPath
}
