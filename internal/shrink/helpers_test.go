package shrink

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testOptions returns a small policy so fixtures stay cheap to generate.
func testOptions() Options {
	return Options{
		Name: "test",
		Dimensions: DimensionPolicy{
			Rules: []DimensionRule{
				{Key: "team", MaxDimension: 1600},
				{Key: "sponsors", MaxDimension: 600},
			},
			Default: 1200,
		},
		JPEGQuality:        85,
		MinSize:            1,
		StrictTransparency: true,
	}
}

func createTestDir(t *testing.T, parentDir, name string) string {
	t.Helper()
	dirPath := filepath.Join(parentDir, name)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dirPath, err)
	}
	return dirPath
}

func createTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", filePath, err)
	}
	return filePath
}

// opaqueImage builds a fully opaque gradient.
func opaqueImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// transparentImage builds a gradient whose top tenth is fully transparent.
func transparentImage(w, h int) *image.NRGBA {
	img := opaqueImage(w, h)
	for y := 0; y < h/10; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	return img
}

func writePNG(t *testing.T, dir, filename string, img image.Image) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)
	f, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", filePath, err)
	}
	return filePath
}

func writeJPEG(t *testing.T, dir, filename string, img image.Image) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)
	f, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("Failed to encode %s: %v", filePath, err)
	}
	return filePath
}

// decodeConfig returns the dimensions and format of the image at path.
func decodeConfig(t *testing.T, path string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return cfg, format
}

func decodeImage(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return img
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.Size()
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist at %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected file to not exist at %s", path)
	}
}
