package render

import (
	"fmt"
	"strconv"

	"github.com/ziadkadry99/deckview/internal/deck"
)

// mapStr reads a string field from a nested object, "" when absent.
func mapStr(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

// mapBool reads a boolean field from a nested object.
func mapBool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func renderHero(s deck.Slide, opts Options) []*Node {
	var nodes []*Node

	if bg := s.Map("background"); bg != nil {
		if n := renderBackground(bg); n != nil {
			nodes = append(nodes, n)
		}
	}

	inner := el("div", "hero-inner")
	if badge := s.Str("badge"); badge != "" {
		inner.add(textEl("span", "badge", badge).editable(opts, "badge"))
	}
	if title := s.Str("title"); title != "" {
		inner.add(textEl("h1", "hero-title", title).editable(opts, "title"))
	}
	if subtitle := s.Str("subtitle"); subtitle != "" {
		inner.add(textEl("p", "hero-subtitle", subtitle).editable(opts, "subtitle"))
	}
	if len(inner.Children) > 0 {
		nodes = append(nodes, inner)
	}
	return nodes
}

// renderBackground emits the hero background media: an image, or a video
// with optional poster, loop flag and image fallback.
func renderBackground(bg map[string]any) *Node {
	src := mapStr(bg, "src")
	if src == "" {
		return nil
	}

	switch mapStr(bg, "type") {
	case "video":
		video := el("video", "slide-background").
			attr("src", src).
			attr("autoplay", "").
			attr("muted", "").
			attr("playsinline", "")
		if poster := mapStr(bg, "poster"); poster != "" {
			video.attr("poster", poster)
		}
		if mapBool(bg, "loop") {
			video.attr("loop", "")
		}
		if fallback := mapStr(bg, "fallback"); fallback != "" {
			img := el("img", "").attr("src", fallback)
			if alt := mapStr(bg, "alt"); alt != "" {
				img.attr("alt", alt)
			}
			video.add(img)
		}
		return video
	default:
		img := el("img", "slide-background").attr("src", src)
		if alt := mapStr(bg, "alt"); alt != "" {
			img.attr("alt", alt)
		}
		return img
	}
}

func renderContent(s deck.Slide, opts Options) []*Node {
	var nodes []*Node

	if title := s.Str("title"); title != "" {
		nodes = append(nodes, textEl("h2", "slide-title", title).editable(opts, "title"))
	}
	if subtitle := s.Str("subtitle"); subtitle != "" {
		nodes = append(nodes, textEl("p", "slide-subtitle", subtitle).editable(opts, "subtitle"))
	}

	if points := s.Strings("points"); len(points) > 0 {
		list := el("ul", "points")
		for i, p := range points {
			list.add(textEl("li", "", p).editable(opts, fmt.Sprintf("points.%d", i)))
		}
		nodes = append(nodes, list)
	}

	if media := s.Map("media"); media != nil {
		if n := renderMedia(media); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// renderMedia emits an inline media block for content slides.
func renderMedia(media map[string]any) *Node {
	src := mapStr(media, "src")
	if src == "" {
		return nil
	}
	if mapStr(media, "type") == "video" {
		return el("video", "slide-media").attr("src", src).attr("controls", "")
	}
	img := el("img", "slide-media").attr("src", src)
	if alt := mapStr(media, "alt"); alt != "" {
		img.attr("alt", alt)
	}
	return img
}

func renderStats(s deck.Slide, opts Options) []*Node {
	var nodes []*Node

	if title := s.Str("title"); title != "" {
		nodes = append(nodes, textEl("h2", "slide-title", title).editable(opts, "title"))
	}

	stats := s.Maps("stats")
	if len(stats) == 0 {
		return nodes
	}

	grid := el("div", "stats-grid")
	if cols := s.Int("columns"); cols > 0 {
		grid.attr("data-columns", strconv.Itoa(cols))
	}
	for i, stat := range stats {
		cell := el("div", "stat")
		if v := mapStr(stat, "value"); v != "" {
			cell.add(textEl("div", "stat-value", v).editable(opts, fmt.Sprintf("stats.%d.value", i)))
		}
		if l := mapStr(stat, "label"); l != "" {
			cell.add(textEl("div", "stat-label", l).editable(opts, fmt.Sprintf("stats.%d.label", i)))
		}
		if c := mapStr(stat, "caption"); c != "" {
			cell.add(textEl("div", "stat-caption", c).editable(opts, fmt.Sprintf("stats.%d.caption", i)))
		}
		grid.add(cell)
	}
	nodes = append(nodes, grid)
	return nodes
}

func renderAgenda(s deck.Slide, opts Options) []*Node {
	var nodes []*Node

	if title := s.Str("title"); title != "" {
		nodes = append(nodes, textEl("h2", "slide-title", title).editable(opts, "title"))
	}

	items := s.Maps("items")
	if len(items) == 0 {
		return nodes
	}

	list := el("ol", "agenda")
	for i, item := range items {
		entry := el("li", "agenda-item")
		entry.add(textEl("span", "agenda-number", strconv.Itoa(i+1)))
		if t := mapStr(item, "title"); t != "" {
			entry.add(textEl("h3", "agenda-title", t).editable(opts, fmt.Sprintf("items.%d.title", i)))
		}
		if d := mapStr(item, "description"); d != "" {
			entry.add(textEl("p", "agenda-description", d).editable(opts, fmt.Sprintf("items.%d.description", i)))
		}
		list.add(entry)
	}
	nodes = append(nodes, list)
	return nodes
}
