// Package fieldpath mutates slide documents through dot-separated field
// paths like "title", "points.1" or "stats.0.value". The renderer tags
// editable leaves with these paths; the edit session routes commits back
// through Set.
package fieldpath

import (
	"strconv"
	"strings"
)

// Set writes value at the given path inside target, mutating it in place.
//
// Each path segment is an object key or a base-10 array index. Missing
// intermediate objects are created on the way down, so callers may address
// fields that do not exist yet. Note that a missing intermediate is always
// created as a plain object, even when the next segment is numeric: on an
// empty slide, "stats.0.value" produces an object keyed by "0", not an
// array. Well-formed source documents pre-populate their arrays, so the
// walk only ever indexes into arrays that already exist.
//
// Arrays are never grown: a non-integer or out-of-range segment aborts the
// walk and the mutation becomes a no-op. The literal path "notes" targets
// the top-level notes field directly, without segment traversal.
func Set(target map[string]any, path, value string) {
	if target == nil || path == "" {
		return
	}
	if path == "notes" {
		target["notes"] = value
		return
	}

	segs := strings.Split(path, ".")
	var cur any = target

	for _, seg := range segs[:len(segs)-1] {
		switch node := cur.(type) {
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return
			}
			cur = node[idx]
		case map[string]any:
			next, ok := node[seg]
			if !ok || next == nil {
				created := map[string]any{}
				node[seg] = created
				cur = created
				continue
			}
			cur = next
		default:
			// Path collides with a scalar; accepted as a no-op.
			return
		}
	}

	last := segs[len(segs)-1]
	switch node := cur.(type) {
	case []any:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 || idx >= len(node) {
			return
		}
		node[idx] = value
	case map[string]any:
		node[last] = value
	}
}
