// Package timing records startup checkpoints when CLOCKWORK_DEBUG_TIMING=1.
//
// Checkpoints are buffered while the TUI owns the terminal and printed by
// Report once it has been released.
package timing

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/alexander-akhmetov/clockwork/internal/debug"
)

// Checkpoint is one recorded label.
type Checkpoint struct {
	Label      string
	SinceLast  time.Duration
	SinceStart time.Duration
}

var (
	mu          sync.Mutex
	enabled     bool
	startTime   time.Time
	lastTime    time.Time
	checkpoints []Checkpoint
)

func init() {
	enabled = os.Getenv("CLOCKWORK_DEBUG_TIMING") == "1"
	if enabled {
		startTime = time.Now()
		lastTime = startTime
	}
}

// Log records a timing checkpoint if CLOCKWORK_DEBUG_TIMING=1
func Log(label string) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	now := time.Now()
	cp := Checkpoint{Label: label, SinceLast: now.Sub(lastTime), SinceStart: now.Sub(startTime)}
	checkpoints = append(checkpoints, cp)
	lastTime = now
	debug.Logf("timing %s: +%dms (total: %dms)", label, cp.SinceLast.Milliseconds(), cp.SinceStart.Milliseconds())
}

// Report writes the recorded checkpoints to w.
func Report(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, cp := range checkpoints {
		fmt.Fprintf(w, "[TIMING] %s: +%dms (total: %dms)\n", cp.Label, cp.SinceLast.Milliseconds(), cp.SinceStart.Milliseconds())
	}
}

// Checkpoints returns a copy of the recorded checkpoints.
func Checkpoints() []Checkpoint {
	mu.Lock()
	defer mu.Unlock()
	return append([]Checkpoint(nil), checkpoints...)
}

func enable(now time.Time) {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	startTime = now
	lastTime = now
	checkpoints = nil
}
