package shrink

import (
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/erpl/imgshrink/internal/logger"
)

// Transcoder defines the interface for shrinking a single image
type Transcoder interface {
	// Transcode resizes and re-encodes the image at path. It returns nil
	// without an error when the file is below the size threshold.
	Transcode(path string) (*Result, error)
}

// imageTranscoder implements the Transcoder interface
type imageTranscoder struct {
	opts       Options
	extensions Extensions
}

// NewTranscoder creates a new Transcoder for the given options
func NewTranscoder(opts Options) Transcoder {
	return &imageTranscoder{
		opts:       opts,
		extensions: NewExtensions(),
	}
}

func (t *imageTranscoder) Transcode(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &TranscodeError{Path: path, Op: "stat", Err: err}
	}
	originalSize := info.Size()
	if originalSize < t.opts.MinSize {
		logger.Debug("Skipping small file", "path", path, "size", originalSize, "min_size", t.opts.MinSize)
		return nil, nil
	}
	if originalSize == 0 {
		return nil, &TranscodeError{Path: path, Op: "validate", Err: ErrEmptyFile}
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &TranscodeError{Path: path, Op: "decode", Err: err}
	}

	maxDim := t.opts.Dimensions.Resolve(path)
	finalPath := path

	if keepsTransparency(img, t.extensions.IsPNG(path), t.opts.StrictTransparency) {
		logger.Debug("Keeping PNG with transparency", "path", path, "max_dimension", maxDim)
		img = resizeToFit(img, maxDim)
		if err := writeImage(path, info.Mode().Perm(), img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, &TranscodeError{Path: path, Op: "encode png", Err: err}
		}
	} else {
		if hasAlphaChannel(img) {
			img = flattenOnWhite(img)
		} else {
			img = toRGB(img)
		}
		img = resizeToFit(img, maxDim)

		finalPath = t.extensions.JPEGPath(path)
		if finalPath != path {
			if _, err := os.Stat(finalPath); err == nil {
				logger.Warn("Overwriting existing JPEG with converted PNG", "path", finalPath, "source", path)
			}
		}
		logger.Debug("Encoding JPEG", "path", finalPath, "quality", t.opts.JPEGQuality, "max_dimension", maxDim)
		if err := writeImage(finalPath, info.Mode().Perm(), img, imaging.JPEG, imaging.JPEGQuality(t.opts.JPEGQuality)); err != nil {
			return nil, &TranscodeError{Path: path, Op: "encode jpeg", Err: err}
		}
		if finalPath != path {
			if err := os.Remove(path); err != nil {
				return nil, &TranscodeError{Path: path, Op: "remove original", Err: err}
			}
		}
	}

	finalInfo, err := os.Stat(finalPath)
	if err != nil {
		return nil, &TranscodeError{Path: finalPath, Op: "stat", Err: err}
	}

	return &Result{
		OriginalPath: path,
		OriginalSize: originalSize,
		FinalPath:    finalPath,
		FinalSize:    finalInfo.Size(),
	}, nil
}

// fitWithin scales (w, h) so the longest side is at most maxDim, flooring
// each side. Images that already fit are returned unchanged.
func fitWithin(w, h, maxDim int) (int, int) {
	longest := max(w, h)
	if longest <= maxDim {
		return w, h
	}
	nw := max(w*maxDim/longest, 1)
	nh := max(h*maxDim/longest, 1)
	return nw, nh
}

func resizeToFit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), maxDim)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// writeImage encodes to a temporary sibling and renames it over path, so
// the existing file survives a failed encode.
func writeImage(path string, perm os.FileMode, img image.Image, format imaging.Format, opts ...imaging.EncodeOption) error {
	tmpPath := path + ".tmp"
	outFile, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	if err := imaging.Encode(outFile, img, format, opts...); err != nil {
		outFile.Close()
		return err
	}
	if err := outFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
