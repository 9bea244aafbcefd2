package deck

import (
	"encoding/json"
	"iter"
	"slices"

	"github.com/youruser/deckcodes/internal/cards"
)

// Deck is an ordered list of CardCodeAndCount.
//
// Entries keep insertion order and are never merged: two entries for the
// same card stay two entries. A Deck is not safe for concurrent mutation.
type Deck struct {
	cards []cards.CardCodeAndCount
}

// New creates an empty Deck.
func New() *Deck {
	return &Deck{}
}

// FromSlice creates a Deck that takes ownership of entries as given.
func FromSlice(entries []cards.CardCodeAndCount) *Deck {
	return &Deck{cards: entries}
}

// Add appends card to the end of the Deck.
func (d *Deck) Add(card cards.CardCodeAndCount) {
	d.cards = append(d.cards, card)
}

// AddFromData resolves code and appends it with count. If the code does not
// resolve the resolver's error is returned and the Deck is unchanged.
func (d *Deck) AddFromData(code string, count int) error {
	card, err := cards.FromCode(code)
	if err != nil {
		return err
	}
	d.Add(cards.NewCardCodeAndCount(card, count))
	return nil
}

// Cards returns the entries in order. The returned slice shares storage with
// the Deck but has its capacity clipped, so appending to it never grows the
// Deck. Callers must not modify its elements.
func (d *Deck) Cards() []cards.CardCodeAndCount {
	return slices.Clip(d.cards)
}

// All iterates over the entries in order.
func (d *Deck) All() iter.Seq2[int, cards.CardCodeAndCount] {
	return slices.All(d.cards)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Equal reports whether both decks hold the same entries in the same order.
// A nil other is never equal.
func (d *Deck) Equal(other *Deck) bool {
	return other != nil && slices.Equal(d.cards, other.cards)
}

// MarshalJSON encodes the Deck as an array of entries.
func (d *Deck) MarshalJSON() ([]byte, error) {
	if d.cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.cards)
}

// UnmarshalJSON decodes an array of entries, replacing the Deck's contents.
func (d *Deck) UnmarshalJSON(data []byte) error {
	var entries []cards.CardCodeAndCount
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	d.cards = entries
	return nil
}
