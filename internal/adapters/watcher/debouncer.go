package watcher

import (
	"sync"
	"time"
)

// Debouncer runs a callback once a burst of triggers has been quiet for the window.
// Editors often write a file several times per save; the callback sees the burst size.
type Debouncer struct {
	window   time.Duration
	callback func(burst int)

	mu      sync.Mutex
	timer   *time.Timer
	pending int
	stopped bool
}

// NewDebouncer creates a Debouncer calling callback window after the last trigger.
func NewDebouncer(window time.Duration, callback func(burst int)) *Debouncer {
	return &Debouncer{window: window, callback: callback}
}

// Trigger records one event and restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending++
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Flush runs the callback now if events are pending and waits for it.
func (d *Debouncer) Flush() {
	if burst := d.take(); burst > 0 {
		d.callback(burst)
	}
}

// Stop drops pending events. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = 0
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire() {
	if burst := d.take(); burst > 0 {
		d.callback(burst)
	}
}

// take resets the pending count and returns it.
func (d *Debouncer) take() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	burst := d.pending
	d.pending = 0
	return burst
}
