package shrink

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// hasAlphaChannel reports whether the decoded image carries alpha at all.
// image/png returns *image.RGBA and *image.RGBA64 for truecolor files
// without a tRNS chunk, so those count as opaque formats.
func hasAlphaChannel(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.Alpha, *image.Alpha16, *image.NYCbCrA:
		return true
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// usesTransparency reports whether at least one pixel is not fully opaque.
func usesTransparency(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				return true
			}
		}
	}
	return false
}

// keepsTransparency decides between the PNG and JPEG output paths.
func keepsTransparency(img image.Image, isPNG, strict bool) bool {
	if !isPNG || !hasAlphaChannel(img) {
		return false
	}
	if strict {
		return usesTransparency(img)
	}
	return true
}

// flattenOnWhite composites img over a white canvas using its own alpha.
func flattenOnWhite(img image.Image) image.Image {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// toRGB prepares an opaque image for JPEG encoding. Gray and YCbCr are
// encoded natively; everything else goes through NRGBA.
func toRGB(img image.Image) image.Image {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.RGBA, *image.NRGBA:
		return img
	default:
		return imaging.Clone(img)
	}
}
