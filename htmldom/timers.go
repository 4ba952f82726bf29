package htmldom

import (
	"sort"
	"time"

	"github.com/vcrobe/elmish/dom"
)

var _ dom.Scheduler = (*Timers)(nil)

// Timers is a manual dom.Scheduler on a virtual clock. Nothing runs until
// Advance or Flush is called, and callbacks run on the caller's goroutine.
type Timers struct {
	now     time.Duration
	seq     int
	pending []timer
}

type timer struct {
	at  time.Duration
	seq int
	f   func()
}

// NewTimers returns a scheduler with its clock at zero.
func NewTimers() *Timers {
	return &Timers{}
}

// AfterFunc queues f to run once the clock reaches now+d.
func (t *Timers) AfterFunc(d time.Duration, f func()) {
	if f == nil {
		return
	}
	t.seq++
	t.pending = append(t.pending, timer{at: t.now + max(d, 0), seq: t.seq, f: f})
}

// Pending returns the number of queued callbacks.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Now returns the virtual clock.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Advance moves the clock forward by d and runs every callback that came
// due, earliest first. Callbacks queued while advancing run too if they
// fall inside the window.
func (t *Timers) Advance(d time.Duration) int {
	deadline := t.now + d
	ran := 0
	for {
		next, ok := t.popDue(deadline)
		if !ok {
			break
		}
		t.now = next.at
		next.f()
		ran++
	}
	t.now = deadline
	return ran
}

// Flush runs everything queued, advancing the clock as far as needed.
func (t *Timers) Flush() int {
	ran := 0
	for len(t.pending) > 0 {
		latest := t.now
		for _, p := range t.pending {
			latest = max(latest, p.at)
		}
		ran += t.Advance(latest - t.now)
	}
	return ran
}

func (t *Timers) popDue(deadline time.Duration) (timer, bool) {
	if len(t.pending) == 0 {
		return timer{}, false
	}
	sort.Slice(t.pending, func(i, j int) bool {
		if t.pending[i].at != t.pending[j].at {
			return t.pending[i].at < t.pending[j].at
		}
		return t.pending[i].seq < t.pending[j].seq
	})
	if t.pending[0].at > deadline {
		return timer{}, false
	}
	next := t.pending[0]
	t.pending = t.pending[1:]
	return next, true
}
