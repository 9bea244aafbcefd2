package cards

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidCardCode is returned when a card code cannot be resolved to a Card.
var ErrInvalidCardCode = errors.New("invalid card code")

const codeLen = 7

// Card is a resolved card reference: set, faction and card number.
type Card struct {
	Set     int
	Faction Faction
	Number  int
}

// FromCode resolves a code such as "01SI015" into a Card.
func FromCode(code string) (Card, error) {
	if len(code) != codeLen {
		return Card{}, errors.Wrapf(ErrInvalidCardCode, "%q", code)
	}

	set, ok := parseDigits(code[0:2])
	if !ok {
		return Card{}, errors.Wrapf(ErrInvalidCardCode, "%q: bad set", code)
	}
	faction, err := FactionFromCode(code[2:4])
	if err != nil {
		return Card{}, errors.Wrapf(ErrInvalidCardCode, "%q: %v", code, err)
	}
	number, ok := parseDigits(code[4:7])
	if !ok {
		return Card{}, errors.Wrapf(ErrInvalidCardCode, "%q: bad card number", code)
	}

	return Card{Set: set, Faction: faction, Number: number}, nil
}

// strconv.Atoi alone would accept signs.
func parseDigits(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Code returns the textual card code.
func (c Card) Code() string {
	return fmt.Sprintf("%02d%s%03d", c.Set, c.Faction, c.Number)
}

// String implements Stringer.
func (c Card) String() string {
	return c.Code()
}
