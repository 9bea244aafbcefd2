package cards

import (
	"github.com/pkg/errors"
)

// ErrUnknownFaction is returned for faction codes or ids that are not known.
var ErrUnknownFaction = errors.New("unknown faction")

// Faction is the region a card belongs to.
type Faction uint8

const (
	Demacia Faction = iota
	Freljord
	Ionia
	Noxus
	PiltoverZaun
	ShadowIsles
	Bilgewater
	Shurima
	MountTargon
	BandleCity
	Runeterra
	numFactions
)

type factionInfo struct {
	code    string
	id      uint64
	version uint8
}

// Indexed by Faction.
var factions = [...]factionInfo{
	{"DE", 0, 1},
	{"FR", 1, 1},
	{"IO", 2, 1},
	{"NX", 3, 1},
	{"PZ", 4, 1},
	{"SI", 5, 1},
	{"BW", 6, 2},
	{"SH", 7, 3},
	{"MT", 9, 2},
	{"BC", 10, 4},
	{"RU", 12, 5},
}

// FactionFromCode returns the Faction for a two-letter code such as "SI".
func FactionFromCode(code string) (Faction, error) {
	for f := Faction(0); f < numFactions; f++ {
		if factions[f].code == code {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFaction, "code %q", code)
}

// FactionFromID returns the Faction with the given deck-code id.
func FactionFromID(id uint64) (Faction, error) {
	for f := Faction(0); f < numFactions; f++ {
		if factions[f].id == id {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFaction, "id %d", id)
}

// ID is the integer written for this faction in deck codes.
func (f Faction) ID() uint64 {
	return factions[f].id
}

// Version is the lowest deck-code version that knows this faction.
func (f Faction) Version() uint8 {
	return factions[f].version
}

// String implements Stringer.
func (f Faction) String() string {
	if f >= numFactions {
		return "??"
	}
	return factions[f].code
}
