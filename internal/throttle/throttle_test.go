package throttle

import (
	"testing"
	"time"
)

// fakeClock advances only when told, so window behavior is exact.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGate(window time.Duration) (*Gate, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := New(window)
	g.now = clock.now
	return g, clock
}

func TestAllowFirstCall(t *testing.T) {
	g, _ := newTestGate(150 * time.Millisecond)
	if !g.Allow() {
		t.Error("first call should always be accepted")
	}
}

func TestDropsCallsInsideWindow(t *testing.T) {
	// Two events 50ms apart with a 150ms window: exactly one recompute.
	g, clock := newTestGate(150 * time.Millisecond)

	accepted := 0
	if g.Allow() {
		accepted++
	}
	clock.advance(50 * time.Millisecond)
	if g.Allow() {
		accepted++
	}

	if accepted != 1 {
		t.Errorf("accepted = %d, want 1", accepted)
	}
}

func TestAcceptsAfterWindow(t *testing.T) {
	g, clock := newTestGate(150 * time.Millisecond)

	g.Allow()
	clock.advance(150 * time.Millisecond)
	if !g.Allow() {
		t.Error("call at exactly the window edge should be accepted")
	}
}

func TestDroppedCallsDoNotExtendWindow(t *testing.T) {
	g, clock := newTestGate(150 * time.Millisecond)

	g.Allow()
	clock.advance(100 * time.Millisecond)
	if g.Allow() {
		t.Fatal("call inside window should be dropped")
	}
	clock.advance(60 * time.Millisecond)
	// 160ms since the accepted call; the dropped call must not have reset it.
	if !g.Allow() {
		t.Error("window should be measured from the last accepted call")
	}
}

func TestZeroWindowAcceptsEverything(t *testing.T) {
	g, _ := newTestGate(0)
	for i := 0; i < 3; i++ {
		if !g.Allow() {
			t.Fatalf("call %d dropped with zero window", i)
		}
	}
}
