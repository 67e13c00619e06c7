package shrink

import (
	"errors"
	"fmt"
)

// ErrEmptyFile is returned for images that are 0 bytes on disk.
var ErrEmptyFile = errors.New("file is 0 bytes (corrupted)")

// TranscodeError records a per-file failure. The batch skips the file and
// moves on.
type TranscodeError struct {
	Path string
	Op   string
	Err  error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}
