package editsession

import (
	"errors"
	"testing"

	"github.com/ziadkadry99/deckview/internal/deck"
	"github.com/ziadkadry99/deckview/internal/render"
)

func testStore(t *testing.T) *deck.Store {
	t.Helper()
	d, err := deck.Load([]byte(`{"slides": [
		{"layout": "content", "title": "Old", "points": ["a", "b"], "notes": "original"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	return deck.NewStore(d)
}

func TestBeginRequiresEditMode(t *testing.T) {
	sess := New(testStore(t), false)
	if _, err := sess.Begin(0, "title"); !errors.Is(err, ErrDisabled) {
		t.Errorf("Begin error = %v, want ErrDisabled", err)
	}
}

func TestBeginValidatesTarget(t *testing.T) {
	sess := New(testStore(t), true)
	if _, err := sess.Begin(3, "title"); err == nil {
		t.Error("Begin should reject an out-of-range slide")
	}
	if _, err := sess.Begin(0, ""); err == nil {
		t.Error("Begin should reject an empty path")
	}
}

func TestCommitOnBlur(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, err := sess.Begin(0, "title")
	if err != nil {
		t.Fatal(err)
	}
	f.Commit("  New Title  ")

	slide, _ := store.Slide(0)
	if got := slide.Str("title"); got != "New Title" {
		t.Errorf("title = %q, want trimmed %q", got, "New Title")
	}
}

func TestCommitListElement(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, _ := sess.Begin(0, "points.1")
	f.Commit("z")

	slide, _ := store.Slide(0)
	points := slide.Strings("points")
	if len(points) != 2 || points[0] != "a" || points[1] != "z" {
		t.Errorf("points = %v, want [a z]", points)
	}
}

func TestOnChangeOnlyLiveForNotes(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, _ := sess.Begin(0, "title")
	f.OnChange("typed but not committed")

	slide, _ := store.Slide(0)
	if got := slide.Str("title"); got != "Old" {
		t.Errorf("title = %q, non-notes fields must not commit on change", got)
	}
}

func TestNotesLiveTypingStripsLabel(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, _ := sess.Begin(0, "notes")
	// The rendered notes block's text is the fixed label followed by the
	// body; live typing re-derives the value from that combined text.
	f.OnChange(render.NotesLabel + " remember the demo")

	slide, _ := store.Slide(0)
	if got := slide.Notes(); got != "remember the demo" {
		t.Errorf("notes = %q, want label stripped", got)
	}
}

func TestNotesLiveTypingWithoutLabel(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, _ := sess.Begin(0, "notes")
	f.OnChange("plain text")

	slide, _ := store.Slide(0)
	if got := slide.Notes(); got != "plain text" {
		t.Errorf("notes = %q, want %q", got, "plain text")
	}
}

func TestCommitIsTerminal(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, _ := sess.Begin(0, "title")
	f.Commit("First")
	f.Commit("Second")

	slide, _ := store.Slide(0)
	if got := slide.Str("title"); got != "First" {
		t.Errorf("title = %q, commit after commit should be a no-op", got)
	}
}

func TestCancelDiscards(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f, _ := sess.Begin(0, "title")
	f.Cancel()
	f.Commit("Should not land")
	f.OnChange("also not")

	slide, _ := store.Slide(0)
	if got := slide.Str("title"); got != "Old" {
		t.Errorf("title = %q, cancel should discard the edit", got)
	}
}

func TestCommitIdempotentAcrossFields(t *testing.T) {
	store := testStore(t)
	sess := New(store, true)

	f1, _ := sess.Begin(0, "subtitle")
	f1.Commit("same")
	f2, _ := sess.Begin(0, "subtitle")
	f2.Commit("same")

	slide, _ := store.Slide(0)
	if got := slide.Str("subtitle"); got != "same" {
		t.Errorf("subtitle = %q, want %q", got, "same")
	}
}
