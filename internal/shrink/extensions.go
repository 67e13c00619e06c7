package shrink

import (
	"path/filepath"
	"slices"
	"strings"
)

// Extensions defines the interface for file extension operations.
type Extensions interface {
	// IsImage returns true if the file extension is a supported image format.
	IsImage(filePath string) bool
	// IsPNG returns true if the file extension is png.
	IsPNG(filePath string) bool
	// IsJPEG returns true if the file extension is JPEG (jpg or jpeg).
	IsJPEG(filePath string) bool
	// JPEGPath returns filePath with a png extension replaced by .jpg.
	JPEGPath(filePath string) string
}

// extensions implements the Extensions interface.
type extensions struct {
	imageExts []string
}

// NewExtensions creates a new Extensions instance.
func NewExtensions() Extensions {
	return &extensions{
		imageExts: []string{".png", ".jpg", ".jpeg"},
	}
}

func (e *extensions) IsImage(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return slices.Contains(e.imageExts, ext)
}

func (e *extensions) IsPNG(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".png"
}

func (e *extensions) IsJPEG(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return ext == ".jpg" || ext == ".jpeg"
}

// JPEGPath only touches the extension, so "png-icons/a.png" becomes
// "png-icons/a.jpg". Paths without a png extension are returned unchanged.
func (e *extensions) JPEGPath(filePath string) string {
	if !e.IsPNG(filePath) {
		return filePath
	}
	return strings.TrimSuffix(filePath, filepath.Ext(filePath)) + ".jpg"
}
