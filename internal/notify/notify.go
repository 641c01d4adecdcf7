// Package notify shows one transient message at a time and dismisses it
// after a fixed delay.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a message stays visible.
const DefaultDuration = 5 * time.Second

// Sink renders notifier state changes. msg is empty when the current
// message is dismissed.
type Sink func(msg string)

// Notifier holds at most one pending message. Showing a new message
// replaces the old one and restarts the dismiss timer.
type Notifier struct {
	sink     Sink
	duration time.Duration

	mu      sync.Mutex
	current string
	seq     uint64
	timer   *time.Timer
}

// New creates a Notifier. A zero duration selects DefaultDuration; a nil
// sink discards output.
func New(sink Sink, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if sink == nil {
		sink = func(string) {}
	}
	return &Notifier{sink: sink, duration: duration}
}

// Show displays msg until it is replaced, dismissed, or times out.
func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = msg
	n.timer = time.AfterFunc(n.duration, func() { n.expire(seq) })
	n.mu.Unlock()

	n.sink(msg)
}

// Current returns the visible message, or "" when none is shown.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Dismiss hides the current message immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	had := n.current != ""
	n.current = ""
	n.mu.Unlock()

	if had {
		n.sink("")
	}
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	if seq != n.seq {
		n.mu.Unlock()
		return
	}
	n.current = ""
	n.timer = nil
	n.mu.Unlock()

	n.sink("")
}
