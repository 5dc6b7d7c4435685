// Package deck holds the in-memory deck document: slide metadata plus an
// ordered list of slides. Slides are kept in their raw JSON shape so that
// field-path mutations and the JSON export see the exact same structure.
package deck

// Known layout tags. Any other value falls back to the content renderer.
const (
	LayoutHero    = "hero"
	LayoutContent = "content"
	LayoutStats   = "stats"
	LayoutAgenda  = "agenda"
)

// Deck is the top-level document: opaque metadata plus ordered slides.
// Slide order defines both render order and navigation order.
type Deck struct {
	Meta   map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Slides []Slide        `json:"slides" yaml:"slides"`
}

// Slide is one record in Deck.Slides, discriminated by its "layout" field.
// It stays a raw map so edits can address nested fields by dot path and
// the export serializes exactly what was loaded plus any mutations.
type Slide map[string]any

// Layout returns the slide's layout tag, or "" when absent.
func (s Slide) Layout() string { return s.Str("layout") }

// ID returns the slide's stable id, or "" when not yet assigned.
func (s Slide) ID() string { return s.Str("id") }

// Theme returns the slide's theme tag, or "" when absent.
func (s Slide) Theme() string { return s.Str("theme") }

// Notes returns the speaker notes string, or "" when absent.
func (s Slide) Notes() string { return s.Str("notes") }

// Str returns the string value at the given top-level key, or "" when the
// key is absent or holds a non-string.
func (s Slide) Str(key string) string {
	v, _ := s[key].(string)
	return v
}

// Map returns the object value at the given top-level key, or nil.
func (s Slide) Map(key string) map[string]any {
	v, _ := s[key].(map[string]any)
	return v
}

// List returns the array value at the given top-level key, or nil.
func (s Slide) List(key string) []any {
	v, _ := s[key].([]any)
	return v
}

// Strings returns the array at key as strings, skipping non-string entries.
func (s Slide) Strings(key string) []string {
	raw := s.List(key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Maps returns the array at key as objects, skipping non-object entries.
func (s Slide) Maps(key string) []map[string]any {
	raw := s.List(key)
	if raw == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Int returns the numeric value at key as an int, or 0. JSON numbers
// decode as float64, so both are accepted.
func (s Slide) Int(key string) int {
	switch v := s[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
