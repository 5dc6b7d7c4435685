package render

import (
	"strconv"

	"github.com/ziadkadry99/deckview/internal/deck"
)

// renderFunc materializes the body of one slide variant. Renderers are
// pure functions of the slide record: no shared state, no panics, absent
// optional fields are simply omitted.
type renderFunc func(s deck.Slide, opts Options) []*Node

// registry maps layout tags to their renderers. Unknown or missing tags
// resolve to the content renderer.
var registry = map[string]renderFunc{
	deck.LayoutHero:    renderHero,
	deck.LayoutContent: renderContent,
	deck.LayoutStats:   renderStats,
	deck.LayoutAgenda:  renderAgenda,
}

// resolveLayout returns the layout tag actually used for rendering.
func resolveLayout(layout string) string {
	if _, ok := registry[layout]; ok {
		return layout
	}
	return deck.LayoutContent
}

// Deck renders every slide in order. An empty deck yields a single static
// placeholder slide so downstream navigation always has one element to
// reason about.
func Deck(d *deck.Deck, opts Options) []*Node {
	if d == nil || len(d.Slides) == 0 {
		return []*Node{Placeholder()}
	}
	nodes := make([]*Node, len(d.Slides))
	for i, s := range d.Slides {
		nodes[i] = Slide(s, i, opts)
	}
	return nodes
}

// Slide renders one slide: the variant body wrapped in a section carrying
// the slide's index, id and theme, with the shared notes appendix.
func Slide(s deck.Slide, index int, opts Options) *Node {
	layout := resolveLayout(s.Layout())

	root := el("section", "slide slide-"+layout).
		attr("data-slide-index", strconv.Itoa(index)).
		attr("data-slide-id", s.ID())
	if theme := s.Theme(); theme != "" {
		root.attr("data-theme", theme)
	}

	root.add(registry[layout](s, opts)...)

	if notes := notesAppendix(s, opts); notes != nil {
		root.add(notes)
	}
	return root
}

// Placeholder is the slide shown when a deck has no slides at all.
func Placeholder() *Node {
	return el("section", "slide slide-placeholder").
		attr("data-slide-index", "0").
		add(textEl("p", "placeholder-message", "This deck has no slides yet."))
}

// ErrorSlide is the terminal slide shown when the deck document could not
// be loaded. No navigation or edit wiring is installed around it.
func ErrorSlide(message string) *Node {
	return el("section", "slide slide-error").
		attr("data-slide-index", "0").
		add(textEl("p", "error-message", message))
}
