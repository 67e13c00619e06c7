package shrink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erpl/imgshrink/internal/logger"
)

// ErrRootNotFound is returned when the asset root is missing or not a directory.
var ErrRootNotFound = errors.New("root directory not found")

// FileStats defines the interface for asset tree statistics
type FileStats interface {
	// ValidateRoot checks that the asset root exists and is a directory
	ValidateRoot(rootDir string) error
	// CountImages returns the number of supported images in a directory recursively
	CountImages(rootDir string) (int, error)
	// WalkImages calls visit for every supported image under rootDir in walk order
	WalkImages(rootDir string, visit func(path string)) error
}

// fileStats implements the FileStats interface
type fileStats struct {
	extensions Extensions
}

// NewFileStats creates a new FileStats instance
func NewFileStats() FileStats {
	return &fileStats{extensions: NewExtensions()}
}

func (f *fileStats) ValidateRoot(rootDir string) error {
	info, err := os.Stat(rootDir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRootNotFound, rootDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, rootDir)
	}
	return nil
}

func (f *fileStats) CountImages(rootDir string) (int, error) {
	count := 0
	err := f.WalkImages(rootDir, func(string) {
		count++
	})
	return count, err
}

// WalkImages follows a symlinked rootDir but reports paths under rootDir
// itself. Symlinks inside the tree are not followed, and unreadable entries
// are logged and skipped.
func (f *fileStats) WalkImages(rootDir string, visit func(path string)) error {
	resolved, err := filepath.EvalSymlinks(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", rootDir, err)
	}

	return filepath.Walk(resolved, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return skipUnreadable(path, info, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			logger.Debug("Skipping symlink", "path", path)
			return nil
		}
		if !info.Mode().IsRegular() || !f.extensions.IsImage(path) {
			return nil
		}

		relPath, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		visit(filepath.Join(rootDir, relPath))
		return nil
	})
}

// skipUnreadable keeps the walk going past a path that cannot be read.
func skipUnreadable(path string, info os.FileInfo, err error) error {
	logger.Warn("Skipping unreadable path", "path", path, "error", err)
	if info != nil && info.IsDir() {
		return filepath.SkipDir
	}
	return nil
}
