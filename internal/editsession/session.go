// Package editsession governs in-place text editing of rendered slides.
// A Session is installed once, at startup, only when the edit flag is
// set; per-field edits then move through begin -> change* -> commit or
// cancel, with commits routed through the field-path mutator into the
// deck store.
package editsession

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ziadkadry99/deckview/internal/deck"
	"github.com/ziadkadry99/deckview/internal/render"
)

// ErrDisabled is returned by Begin when edit mode is off.
var ErrDisabled = errors.New("edit mode is not enabled")

// Session is the global edit state for one live deck.
type Session struct {
	store   *deck.Store
	enabled bool
}

// New creates a session over the given store. enabled is the edit flag
// read once at load time; it does not change afterwards.
func New(store *deck.Store, enabled bool) *Session {
	return &Session{store: store, enabled: enabled}
}

// Enabled reports whether edit wiring is installed.
func (s *Session) Enabled() bool { return s.enabled }

// Begin starts editing one field of one slide.
func (s *Session) Begin(slide int, path string) (*Field, error) {
	if !s.enabled {
		return nil, ErrDisabled
	}
	if path == "" {
		return nil, errors.New("field path is required")
	}
	if _, ok := s.store.Slide(slide); !ok {
		return nil, fmt.Errorf("slide %d out of range", slide)
	}
	return &Field{sess: s, slide: slide, path: path}, nil
}

// Field is one in-progress edit.
type Field struct {
	sess  *Session
	slide int
	path  string
	done  bool
}

// OnChange handles a keystroke-level update. Only the notes field commits
// live: its rendered block is label plus body, so the committed value is
// re-derived by stripping the fixed label prefix from the element text.
// All other fields wait for Commit.
func (f *Field) OnChange(text string) {
	if f.done || f.path != "notes" {
		return
	}
	value := strings.TrimPrefix(text, render.NotesLabel)
	f.sess.store.Apply(f.slide, f.path, strings.TrimSpace(value))
}

// Commit writes the trimmed text through the mutator and ends the edit.
// Committing the same value twice leaves the slide in the same state as
// committing it once.
func (f *Field) Commit(text string) {
	if f.done {
		return
	}
	f.done = true
	f.sess.store.Apply(f.slide, f.path, strings.TrimSpace(text))
}

// Cancel ends the edit without writing.
func (f *Field) Cancel() {
	f.done = true
}
