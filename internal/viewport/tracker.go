// Package viewport computes which rendered slide sits nearest the
// vertical center of the scrollable viewport.
package viewport

import "math"

// RenderedSlide is the measured geometry of one slide as the host reports
// it. Top is the slide's offset from the top of the viewport (element
// bounds), so it goes negative once the slide scrolls past.
type RenderedSlide struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ActiveIndex returns the index of the slide whose center is closest to
// the viewport center. Slides are scanned in document order and the first
// minimum wins, so ties resolve to the lowest index. Callers guard the
// zero-slide case; with no slides the result is 0.
func ActiveIndex(slides []RenderedSlide, scrollTop, clientHeight float64) int {
	viewportCenter := scrollTop + clientHeight/2

	active := 0
	best := math.Inf(1)
	for i, s := range slides {
		center := s.Top + scrollTop + s.Height/2
		if d := math.Abs(center - viewportCenter); d < best {
			best = d
			active = i
		}
	}
	return active
}
