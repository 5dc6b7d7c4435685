// Package nav implements the keyboard- and click-driven slide navigation
// state machine that keeps the dot indicator in sync with the viewport
// tracker's output.
package nav

// Keys the controller responds to. Anything else is ignored.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyPageDown  = "PageDown"
	KeyPageUp    = "PageUp"
)

// Controller dispatches navigation moves over the viewport tracker's live
// answer. It is not a second source of truth: the index a key press moves
// from is always read fresh from the active function, never from stored
// state. Its own current index exists only to drive the indicator
// optimistically.
type Controller struct {
	count   int
	active  func() int
	current int
}

// New creates a controller for count slides. active supplies the viewport
// tracker's current answer; it must not be nil.
func New(count int, active func() int) *Controller {
	return &Controller{count: count, active: active}
}

// Count returns the number of slides being navigated.
func (c *Controller) Count() int { return c.count }

// Current returns the indicator index after the last transition.
func (c *Controller) Current() int { return c.current }

// SetActive records the tracker's latest answer as the indicator state.
// Called when a throttled scroll recompute lands.
func (c *Controller) SetActive(index int) {
	c.current = c.clamp(index)
}

// HandleKey maps a key press to a slide jump. It returns the target index
// and whether a move should happen; unrecognized keys report false with
// no side effects.
func (c *Controller) HandleKey(key string) (int, bool) {
	if c.count == 0 {
		return 0, false
	}

	from := c.clamp(c.active())
	var target int
	switch key {
	case KeyArrowDown, KeyPageDown:
		target = from + 1
		if target > c.count-1 {
			target = c.count - 1
		}
	case KeyArrowUp, KeyPageUp:
		target = from - 1
		if target < 0 {
			target = 0
		}
	default:
		return 0, false
	}

	c.current = target
	return target, true
}

// JumpTo handles a direct dot click: the indicator updates immediately,
// without waiting for the tracker to confirm arrival.
func (c *Controller) JumpTo(index int) int {
	target := c.clamp(index)
	c.current = target
	return target
}

func (c *Controller) clamp(i int) int {
	if c.count == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > c.count-1 {
		return c.count - 1
	}
	return i
}
