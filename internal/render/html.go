package render

import (
	"html"
	"sort"
	"strings"
)

// voidTags never carry children or a closing tag.
var voidTags = map[string]bool{
	"br":     true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
}

// HTML materializes a list of nodes as an HTML fragment. Attributes are
// emitted in sorted order so output is deterministic.
func HTML(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		n.write(&b)
	}
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs)+1)
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	if n.Field != "" {
		keys = append(keys, "data-field")
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := n.Attrs[k]
		if k == "data-field" {
			v = n.Field
		}
		b.WriteByte(' ')
		b.WriteString(k)
		if v != "" || !booleanAttr(k) {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(v))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')

	if voidTags[n.Tag] {
		return
	}

	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	if n.RawHTML != "" {
		b.WriteString(n.RawHTML)
	}
	for _, c := range n.Children {
		c.write(b)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// booleanAttr reports whether an empty-valued attribute should be emitted
// without ="" (autoplay, muted, loop and friends).
func booleanAttr(key string) bool {
	switch key {
	case "autoplay", "muted", "loop", "controls", "playsinline":
		return true
	}
	return false
}
