package debounce

import (
	"sync"
	"time"
)

const DefaultDelay = 300 * time.Millisecond

// Debouncer runs the most recently triggered function once no new trigger
// has arrived for the configured delay. Only the trailing edge fires.
type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	timer      *time.Timer
	generation uint64
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn and supersedes any call that is still pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.generation++
	gen := d.generation

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.generation
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		// a timer that already fired when it was superseded must not run
		if current {
			fn()
		}
	})
}

// Stop cancels a pending call and reports whether there was one.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++

	if d.timer == nil {
		return false
	}

	stopped := d.timer.Stop()
	d.timer = nil

	return stopped
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
