package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Entry describes one expected file as found on disk.
type Entry struct {
	Name   string
	Exists bool
	Size   int64
}

// Scan stats every target in dir. Directories and other non-regular files
// count as missing.
func Scan(dir string, targets []Target) []Entry {
	entries := make([]Entry, 0, len(targets))
	for _, t := range targets {
		e := Entry{Name: t.Name}
		if fi, err := os.Stat(filepath.Join(dir, t.Name)); err == nil && fi.Mode().IsRegular() {
			e.Exists = true
			e.Size = fi.Size()
		}
		entries = append(entries, e)
	}
	return entries
}

// WriteSummary prints the scan results, one line per expected file.
func (r Report) WriteSummary(w io.Writer) {
	present := 0
	for _, e := range r.Entries {
		if e.Exists {
			present++
		}
	}
	fmt.Fprintf(w, "%d/%d icons in %s\n", present, len(r.Entries), r.Dir)
	for _, e := range r.Entries {
		if e.Exists {
			fmt.Fprintf(w, "  ok       %-20s %s\n", e.Name, humanize.IBytes(uint64(e.Size)))
		} else {
			fmt.Fprintf(w, "  missing  %s\n", e.Name)
		}
	}
	if failed := r.Failed(); len(failed) > 0 {
		fmt.Fprintf(w, "%d failed\n", len(failed))
	}
}
