package scheduling

import (
	"sync"
	"time"
)

// DefaultDebounceQuietWindow is how long filter changes are coalesced before
// a fetch fires. Anything exposing a live filter form must keep this quiet
// window so half-typed filters do not cause request storms.
const DefaultDebounceQuietWindow = 300 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback after a quiet
// window. Trigger replaces any pending callback, so only the latest filter
// state produces a fetch.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultDebounceQuietWindow
	}
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn after the quiet window, cancelling any previously
// scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
