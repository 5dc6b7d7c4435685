// Package render turns deck slides into a neutral, declarative node tree
// and materializes that tree as HTML. Keeping the tree separate from the
// HTML output lets the variant renderers, the mutation paths and the
// viewport logic stay independent of any particular UI surface.
package render

// Node is one element in the declarative render tree.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string // escaped on output
	RawHTML  string // pre-rendered content, written verbatim
	Field    string // field path annotation for editable leaves
	Children []*Node
}

// Options controls rendering for a whole deck.
type Options struct {
	// Editable tags every scalar leaf with its field path so the edit
	// session can route commits back to the right location.
	Editable bool
}

// el creates an element node with an optional class.
func el(tag, class string) *Node {
	n := &Node{Tag: tag, Attrs: map[string]string{}}
	if class != "" {
		n.Attrs["class"] = class
	}
	return n
}

// textEl creates an element node holding escaped text.
func textEl(tag, class, text string) *Node {
	n := el(tag, class)
	n.Text = text
	return n
}

// attr sets an attribute and returns the node for chaining.
func (n *Node) attr(key, value string) *Node {
	n.Attrs[key] = value
	return n
}

// add appends child nodes and returns the parent.
func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// editable annotates a leaf with its field path when edit mode is on.
func (n *Node) editable(opts Options, path string) *Node {
	if opts.Editable {
		n.Field = path
	}
	return n
}
