package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ziadkadry99/deckview/internal/fieldpath"
)

// Store owns the single live deck instance for a viewing/editing session.
// Every component that needs the deck is handed the same Store, so the
// object mutated by edits is the exact object a later export serializes.
type Store struct {
	mu   sync.Mutex
	deck *Deck
}

// NewStore wraps the given deck. The deck is held by reference, not copied.
func NewStore(d *Deck) *Store {
	return &Store{deck: d}
}

// Deck returns the live deck instance. Callers that may run concurrently
// with Apply must use View instead: reading the slide maps while a
// mutation lands is a runtime fatal, not a recoverable panic.
func (s *Store) Deck() *Deck { return s.deck }

// View runs fn with the deck held under the store lock, so a full read of
// the slide maps cannot interleave with a concurrent Apply. fn must not
// retain the deck past its return.
func (s *Store) View(fn func(*Deck)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.deck)
}

// Len returns the number of slides.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deck.Slides)
}

// Slide returns the slide at index i, or false when out of range.
func (s *Store) Slide(i int) (Slide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.deck.Slides) {
		return nil, false
	}
	return s.deck.Slides[i], true
}

// Apply writes value at the dot-separated field path inside slide i,
// creating missing intermediate objects as needed. Out-of-range slide
// indexes and malformed paths are silent no-ops.
func (s *Store) Apply(i int, path, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.deck.Slides) {
		return
	}
	fieldpath.Set(s.deck.Slides[i], path, value)
}

// ExportJSON serializes the live deck, including any mutations applied
// since load.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.deck, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting deck: %w", err)
	}
	return data, nil
}
