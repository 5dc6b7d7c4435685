package fieldpath

import (
	"reflect"
	"testing"
)

func TestSetTopLevelKey(t *testing.T) {
	slide := map[string]any{"title": "old"}
	Set(slide, "title", "new")
	if slide["title"] != "new" {
		t.Errorf("title = %v, want %q", slide["title"], "new")
	}
}

func TestSetListElement(t *testing.T) {
	slide := map[string]any{"points": []any{"a", "b"}}
	Set(slide, "points.1", "z")

	want := []any{"a", "z"}
	if !reflect.DeepEqual(slide["points"], want) {
		t.Errorf("points = %v, want %v", slide["points"], want)
	}
}

func TestSetNestedListField(t *testing.T) {
	slide := map[string]any{
		"stats": []any{
			map[string]any{"value": "10%", "label": "uptime"},
		},
	}
	Set(slide, "stats.0.value", "99%")

	stat := slide["stats"].([]any)[0].(map[string]any)
	if stat["value"] != "99%" {
		t.Errorf("stats.0.value = %v, want %q", stat["value"], "99%")
	}
	if stat["label"] != "uptime" {
		t.Errorf("stats.0.label = %v, want untouched %q", stat["label"], "uptime")
	}
}

// Missing intermediates are created as plain objects, even before a numeric
// segment. On an empty slide, "stats.0.value" therefore yields an object
// keyed by "0" rather than an array. This is the current, intentional
// behavior; changing it to create arrays would be a semantic change, not a
// bug fix, and must fail this test first.
func TestSetCreatesObjectIntermediates(t *testing.T) {
	slide := map[string]any{}
	Set(slide, "stats.0.value", "42%")

	want := map[string]any{
		"stats": map[string]any{
			"0": map[string]any{"value": "42%"},
		},
	}
	if !reflect.DeepEqual(map[string]any(slide), want) {
		t.Errorf("slide = %v, want %v", slide, want)
	}
}

func TestSetNotesBypass(t *testing.T) {
	slide := map[string]any{
		"notes": map[string]any{"nested": "shape"},
	}
	Set(slide, "notes", "hi")

	if slide["notes"] != "hi" {
		t.Errorf("notes = %v, want %q", slide["notes"], "hi")
	}
}

func TestSetIdempotent(t *testing.T) {
	once := map[string]any{"points": []any{"a", "b"}}
	twice := map[string]any{"points": []any{"a", "b"}}

	Set(once, "points.0", "x")
	Set(twice, "points.0", "x")
	Set(twice, "points.0", "x")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double commit diverged: %v vs %v", once, twice)
	}
}

func TestSetMalformedPathsAreNoOps(t *testing.T) {
	tests := []struct {
		name  string
		slide map[string]any
		path  string
	}{
		{"index out of range", map[string]any{"points": []any{"a"}}, "points.5"},
		{"non-integer array segment", map[string]any{"points": []any{"a"}}, "points.x"},
		{"negative index", map[string]any{"points": []any{"a"}}, "points.-1"},
		{"scalar collision", map[string]any{"title": "t"}, "title.sub.field"},
		{"intermediate index out of range", map[string]any{"stats": []any{}}, "stats.0.value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := deepCopy(tt.slide)
			Set(tt.slide, tt.path, "v")
			if !reflect.DeepEqual(tt.slide, before) {
				t.Errorf("slide mutated: %v, want %v", tt.slide, before)
			}
		})
	}
}

func TestSetNilAndEmpty(t *testing.T) {
	Set(nil, "title", "v") // must not panic

	slide := map[string]any{"title": "t"}
	Set(slide, "", "v")
	if slide["title"] != "t" || len(slide) != 1 {
		t.Errorf("empty path mutated slide: %v", slide)
	}
}

// deepCopy clones a JSON-shaped value for before/after comparison.
func deepCopy(v map[string]any) map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		switch tv := val.(type) {
		case map[string]any:
			out[k] = deepCopy(tv)
		case []any:
			cp := make([]any, len(tv))
			copy(cp, tv)
			out[k] = cp
		default:
			out[k] = val
		}
	}
	return out
}
