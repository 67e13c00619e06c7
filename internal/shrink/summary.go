package shrink

import (
	"fmt"
	"io"
)

// Summary accumulates the outcome of a run.
type Summary struct {
	// Compressed is the number of files that produced a result.
	Compressed int
	// BytesSaved may be negative when re-encoding grew the files.
	BytesSaved int64
}

// Add records one transcoded file.
func (s *Summary) Add(r Result) {
	s.Compressed++
	s.BytesSaved += r.Saved()
}

// WriteReport prints the end-of-run summary.
func (s Summary) WriteReport(w io.Writer) error {
	if s.Compressed == 0 {
		_, err := fmt.Fprintln(w, "All images are already optimized!")
		return err
	}
	_, err := fmt.Fprintf(w, "\nCompressed %d images\nTotal saved: %dMB (%dKB)\n\nIf any PNGs were converted to JPG, update your references!\n",
		s.Compressed, s.BytesSaved/1024/1024, s.BytesSaved/1024)
	return err
}

// writeProgress prints the per-file line for a compressed image.
func writeProgress(w io.Writer, r Result) {
	if r.Renamed() {
		fmt.Fprintf(w, "  ✓ %s → %s: %dKB → %dKB\n", r.OriginalPath, r.FinalPath, r.OriginalSize/1024, r.FinalSize/1024)
		return
	}
	fmt.Fprintf(w, "  ✓ %s: %dKB → %dKB\n", r.OriginalPath, r.OriginalSize/1024, r.FinalSize/1024)
}
