// Package probe resolves audio file durations through an external
// media-metadata binary and tracks the imported file roster.
package probe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Prober resolves a media file's duration in seconds. Implementations never
// fail: an unreadable or non-media file reports 0 and ok=false.
type Prober interface {
	Duration(ctx context.Context, path string) (seconds float64, ok bool)
}

// FFProbe shells out to ffprobe for the container duration.
type FFProbe struct {
	Binary  string        // defaults to "ffprobe"
	Timeout time.Duration // per-file; defaults to 15s
}

func (p FFProbe) Duration(ctx context.Context, path string) (float64, bool) {
	bin := p.Binary
	if bin == "" {
		bin = "ffprobe"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return seconds, true
}

// Result pairs a path with its probe outcome.
type Result struct {
	Path    string
	Seconds float64
	OK      bool
}

// ProbeAll fans out one probe per path and joins before returning. Results
// come back in input order regardless of completion order; a slow or failed
// probe never blocks the others' results, only the final join.
func ProbeAll(ctx context.Context, p Prober, paths []string) []Result {
	results := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			seconds, ok := p.Duration(ctx, path)
			results[i] = Result{Path: path, Seconds: seconds, OK: ok}
		}(i, path)
	}
	wg.Wait()
	return results
}
