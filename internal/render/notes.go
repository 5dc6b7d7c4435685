package render

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/deckview/internal/deck"
)

// NotesLabel is the fixed label rendered before the notes body. The live
// notes edit path strips this exact string from the element text to
// recover the editable value, so the renderer and the edit session must
// agree on it.
const NotesLabel = "Speaker notes"

// notesMarkdown converts speaker notes to HTML for view mode.
var notesMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// notesAppendix builds the fixed-format appendix shared by every variant.
// Returns nil when the slide carries no notes. In edit mode the body holds
// the raw string so it stays editable; otherwise the notes are rendered as
// markdown.
func notesAppendix(s deck.Slide, opts Options) *Node {
	notes := s.Notes()
	if notes == "" {
		return nil
	}

	body := el("div", "notes-body")
	if opts.Editable {
		body.Text = notes
		body.Field = "notes"
	} else {
		body.RawHTML = notesHTML(notes)
	}

	return el("aside", "slide-notes").
		add(textEl("span", "notes-label", NotesLabel)).
		add(body)
}

func notesHTML(notes string) string {
	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(notes), &buf); err != nil {
		return html.EscapeString(notes)
	}
	return buf.String()
}
