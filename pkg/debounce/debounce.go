// Package debounce provides a trailing-edge debounce combinator: the wrapped
// function runs once the calls stop arriving for the configured interval,
// and each new call cancels the pending timer of the previous one.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of Call invocations into a single execution of
// fn on the trailing edge. The zero value is not usable; construct with New.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// New returns a Debouncer running fn delay after the last Call.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call schedules fn, superseding any pending schedule.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any pending execution. It does not wait for a running fn.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
