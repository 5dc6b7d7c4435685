// Package throttle provides a trailing-edge-drop rate limiter: calls
// arriving inside the cooldown window of the last accepted call are
// discarded outright, never queued or deferred. The scroll handler uses
// this to bound how often the viewport tracker recomputes; the cost is
// that the very last scroll position may never trigger a recompute, which
// is acceptable for a visual indicator.
package throttle

import (
	"sync"
	"time"
)

// DefaultWindow is the cooldown used for scroll tracking.
const DefaultWindow = 150 * time.Millisecond

// Gate is a trailing-edge-drop rate limiter.
type Gate struct {
	mu     sync.Mutex
	window time.Duration
	last   time.Time
	now    func() time.Time
}

// New creates a Gate with the given cooldown window. A non-positive
// window accepts every call.
func New(window time.Duration) *Gate {
	return &Gate{window: window, now: time.Now}
}

// Allow reports whether a call arriving now should run. The first call
// always runs; subsequent calls run only once the window since the last
// accepted call has elapsed. Dropped calls leave the window untouched.
func (g *Gate) Allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.window {
		return false
	}
	g.last = now
	return true
}
