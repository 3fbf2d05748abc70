package catalog

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid input changes: each Set cancels the pending
// commit and restarts the quiet-period timer, so only the last value is
// committed. A timer that fires after a newer Set is discarded, never
// applied out of order.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	commit func(string)
	timer  *time.Timer
	gen    uint64
}

func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	return &Debouncer{delay: delay, commit: commit}
}

// Set records value and (re)starts the quiet period.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.commit(value)
	})
}

// Stop drops any pending commit.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
