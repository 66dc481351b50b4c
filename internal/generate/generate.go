// Package generate writes the PWA icon set to disk, one file at a time, and
// reports what ended up in the output directory.
package generate

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Target is one file to produce.
type Target struct {
	Name string
	Size int
}

// Targets returns an icon-SxS.png target per size followed by the badge.
func Targets(sizes []int, badge int) []Target {
	targets := make([]Target, 0, len(sizes)+1)
	for _, s := range sizes {
		targets = append(targets, Target{Name: fmt.Sprintf("icon-%dx%d.png", s, s), Size: s})
	}
	return append(targets, Target{Name: fmt.Sprintf("badge-%dx%d.png", badge, badge), Size: badge})
}

// Encoder produces PNG bytes for a square size.
type Encoder interface {
	PNG(size int) ([]byte, error)
}

// Result is the outcome of writing one target.
type Result struct {
	Target
	Path  string
	Bytes int
	Err   error
}

// Report collects per-file outcomes and the post-run directory scan.
type Report struct {
	Dir     string
	Results []Result
	Entries []Entry
}

// Failed returns the results that carry an error.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Driver renders and writes Targets into Dir sequentially.
type Driver struct {
	Dir     string
	Targets []Target
	Encoder Encoder
	Logger  *log.Logger
}

// Run creates Dir if needed, then writes every target. A failing target is
// logged and recorded on its Result; the remaining targets are still
// attempted. The returned error is non-nil only if Dir cannot be created.
func (d *Driver) Run() (Report, error) {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	report := Report{Dir: d.Dir}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir: %w", err)
	}

	for _, t := range d.Targets {
		res := d.write(t)
		if res.Err != nil {
			logger.Printf("generate: %s: %v", t.Name, res.Err)
		} else {
			logger.Printf("generate: wrote %s (%dx%d)", res.Path, t.Size, t.Size)
		}
		report.Results = append(report.Results, res)
	}

	report.Entries = Scan(d.Dir, d.Targets)
	return report, nil
}

func (d *Driver) write(t Target) Result {
	res := Result{Target: t, Path: filepath.Join(d.Dir, t.Name)}
	data, err := d.Encoder.PNG(t.Size)
	if err != nil {
		res.Err = fmt.Errorf("render: %w", err)
		return res
	}
	if err := writeFile(res.Path, data); err != nil {
		res.Err = fmt.Errorf("write: %w", err)
		return res
	}
	res.Bytes = len(data)
	return res
}

// writeFile writes via a sibling .tmp file and a rename, so a failure never
// leaves a truncated PNG under the final name.
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
