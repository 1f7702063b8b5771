package query

import (
	"sync"
	"time"
)

// Timer is the cancellable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock is the real-time Clock.
var WallClock Clock = wallClock{}

// Debouncer coalesces rapid updates: a value settles only after no newer
// value has arrived for the configured delay.
type Debouncer[T comparable] struct {
	mu      sync.Mutex
	clock   Clock
	delay   time.Duration
	timer   Timer
	seq     uint64
	value   T
	pending T
	stopped bool
	settled chan T
}

// NewDebouncer creates a debouncer whose settled value starts at initial.
func NewDebouncer[T comparable](initial T, delay time.Duration, clock Clock) *Debouncer[T] {
	if clock == nil {
		clock = WallClock
	}
	return &Debouncer[T]{
		clock:   clock,
		delay:   delay,
		value:   initial,
		pending: initial,
		settled: make(chan T, 1),
	}
}

// Set records v and restarts the wait. Intermediate values are dropped.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = v
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
	}

	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// A Stop that raced the timer, or a newer Set, wins.
	if d.stopped || seq != d.seq {
		return
	}
	d.timer = nil
	d.value = d.pending

	select {
	case <-d.settled:
	default:
	}
	d.settled <- d.value
}

// Value returns the last settled value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Pending returns the most recent input, settled or not.
func (d *Debouncer[T]) Pending() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Settled delivers settled values. It holds at most the latest one and is
// closed by Stop.
func (d *Debouncer[T]) Settled() <-chan T {
	return d.settled
}

// Stop cancels the pending timer. A stopped debouncer never settles again.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	close(d.settled)
}
