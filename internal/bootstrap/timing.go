package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/tabwin/tabwin/internal/logging"
)

// StartupTimer tracks durations of cold start phases. Safe for use from
// the parallel init goroutines.
type StartupTimer struct {
	start  time.Time
	phases map[string]time.Duration
	order  []string
	last   time.Time
	mu     sync.Mutex
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{
		start:  now,
		phases: make(map[string]time.Duration),
		order:  make([]string, 0),
		last:   now,
	}
}

// Mark records the duration since the last mark (or start) for the phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases[phase] = now.Sub(t.last)
	t.order = append(t.order, phase)
	t.last = now
}

// MarkDuration records a duration measured elsewhere, such as inside a
// parallel init goroutine.
func (t *StartupTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.phases[phase] = d
	t.order = append(t.order, phase)
}

// Total returns the elapsed time since timer creation.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// Log writes all recorded phases to the context logger at info level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := logging.FromContext(ctx)
	event := log.Info().Dur("total", time.Since(t.start))
	for _, phase := range t.order {
		if dur, ok := t.phases[phase]; ok {
			event = event.Dur(phase, dur)
		}
	}
	event.Msg("startup timing")
}
