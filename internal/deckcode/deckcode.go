// Package deckcode converts decks to and from shareable deck codes.
//
// A deck code is unpadded base32 of a byte stream. The first byte holds the
// format (high nibble) and version (low nibble). Cards with counts 3, 2 and 1
// follow as blocks of groups, each group sharing a set and faction. Cards
// with any other count are written last, one by one. All integers are
// unsigned varints.
package deckcode

import (
	"encoding/base32"
	"encoding/binary"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/youruser/deckcodes/internal/cards"
	"github.com/youruser/deckcodes/internal/deck"
)

const (
	Format uint8 = 1

	// MaxKnownVersion is the newest version Decode accepts.
	MaxKnownVersion uint8 = 5

	maxSet    = 99
	maxNumber = 999
	maxCount  = 999
)

var (
	ErrInvalidCode    = errors.New("invalid deck code")
	ErrInvalidCount   = errors.New("invalid card count")
	ErrUnknownFormat  = errors.New("unknown deck code format")
	ErrUnknownVersion = errors.New("unknown deck code version")
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode returns the deck code for d. Counts must be between 1 and 999.
// Entries sharing a card are encoded separately, not merged.
func Encode(d *deck.Deck) (string, error) {
	version := uint8(1)
	var byCount [4][]cards.CardCodeAndCount
	var rest []cards.CardCodeAndCount
	for i, e := range d.All() {
		if _, err := cards.FromCode(e.Card.Code()); err != nil {
			return "", errors.Wrapf(err, "entry %d", i)
		}
		if e.Count < 1 || e.Count > maxCount {
			return "", errors.Wrapf(ErrInvalidCount, "entry %d: %s has count %d", i, e.Card, e.Count)
		}
		if v := e.Card.Faction.Version(); v > version {
			version = v
		}
		if e.Count <= 3 {
			byCount[e.Count] = append(byCount[e.Count], e)
		} else {
			rest = append(rest, e)
		}
	}

	buf := []byte{Format<<4 | version}
	for count := 3; count >= 1; count-- {
		groups := groupBySetAndFaction(byCount[count])
		buf = binary.AppendUvarint(buf, uint64(len(groups)))
		for _, g := range groups {
			first := g[0].Card
			buf = binary.AppendUvarint(buf, uint64(len(g)))
			buf = binary.AppendUvarint(buf, uint64(first.Set))
			buf = binary.AppendUvarint(buf, first.Faction.ID())
			for _, e := range g {
				buf = binary.AppendUvarint(buf, uint64(e.Card.Number))
			}
		}
	}

	sortByCode(rest)
	for _, e := range rest {
		buf = binary.AppendUvarint(buf, uint64(e.Count))
		buf = binary.AppendUvarint(buf, uint64(e.Card.Set))
		buf = binary.AppendUvarint(buf, e.Card.Faction.ID())
		buf = binary.AppendUvarint(buf, uint64(e.Card.Number))
	}

	return encoding.EncodeToString(buf), nil
}

// groupBySetAndFaction splits entries into groups sharing set and faction.
// Groups are ordered by size then by first card code, and cards within a
// group by code.
func groupBySetAndFaction(entries []cards.CardCodeAndCount) [][]cards.CardCodeAndCount {
	type key struct {
		set     int
		faction cards.Faction
	}
	idx := map[key]int{}
	var groups [][]cards.CardCodeAndCount
	for _, e := range entries {
		k := key{e.Card.Set, e.Card.Faction}
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], e)
	}

	for _, g := range groups {
		sortByCode(g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) < len(groups[j])
		}
		return groups[i][0].Card.Code() < groups[j][0].Card.Code()
	})
	return groups
}

func sortByCode(entries []cards.CardCodeAndCount) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Card.Code() < entries[j].Card.Code()
	})
}

// Decode parses a deck code. Padded and unpadded codes are both accepted.
// Entries come back grouped as they were encoded, not in the order the
// original deck was built.
func Decode(code string) (*deck.Deck, error) {
	code = strings.TrimRight(strings.TrimSpace(code), "=")
	if code == "" {
		return nil, errors.Wrap(ErrInvalidCode, "empty")
	}
	data, err := encoding.DecodeString(strings.ToUpper(code))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCode, "base32: %v", err)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidCode, "no header")
	}

	format, version := data[0]>>4, data[0]&0x0F
	if format != Format {
		return nil, errors.Wrapf(ErrUnknownFormat, "%d", format)
	}
	if version > MaxKnownVersion {
		return nil, errors.Wrapf(ErrUnknownVersion, "%d", version)
	}

	r := &reader{data: data[1:], version: version}
	d := deck.New()
	for count := 3; count >= 1; count-- {
		numGroups, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		for g := uint64(0); g < numGroups; g++ {
			numCards, err := r.uvarint()
			if err != nil {
				return nil, err
			}
			set, faction, err := r.setAndFaction()
			if err != nil {
				return nil, err
			}
			for c := uint64(0); c < numCards; c++ {
				card, err := r.card(set, faction)
				if err != nil {
					return nil, err
				}
				d.Add(cards.NewCardCodeAndCount(card, count))
			}
		}
	}

	for r.len() > 0 {
		count, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		set, faction, err := r.setAndFaction()
		if err != nil {
			return nil, err
		}
		card, err := r.card(set, faction)
		if err != nil {
			return nil, err
		}
		if count > maxCount {
			return nil, errors.Wrapf(ErrInvalidCount, "%d copies of %s", count, card)
		}
		d.Add(cards.NewCardCodeAndCount(card, int(count)))
	}

	return d, nil
}

type reader struct {
	data    []byte
	version uint8
}

func (r *reader) len() int {
	return len(r.data)
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data)
	if n <= 0 {
		return 0, errors.Wrap(ErrInvalidCode, "truncated varint")
	}
	r.data = r.data[n:]
	return v, nil
}

func (r *reader) setAndFaction() (int, cards.Faction, error) {
	set, err := r.uvarint()
	if err != nil {
		return 0, 0, err
	}
	if set > maxSet {
		return 0, 0, errors.Wrapf(ErrInvalidCode, "set %d", set)
	}
	id, err := r.uvarint()
	if err != nil {
		return 0, 0, err
	}
	faction, err := cards.FactionFromID(id)
	if err != nil {
		return 0, 0, err
	}
	if faction.Version() > r.version {
		return 0, 0, errors.Wrapf(ErrUnknownVersion, "faction %s in a version %d code", faction, r.version)
	}
	return int(set), faction, nil
}

func (r *reader) card(set int, faction cards.Faction) (cards.Card, error) {
	number, err := r.uvarint()
	if err != nil {
		return cards.Card{}, err
	}
	if number > maxNumber {
		return cards.Card{}, errors.Wrapf(ErrInvalidCode, "card number %d", number)
	}
	return cards.Card{Set: set, Faction: faction, Number: int(number)}, nil
}
