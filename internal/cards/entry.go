package cards

import (
	"encoding/json"
	"fmt"
)

// CardCodeAndCount pairs a Card with how many copies of it there are.
// Count is not range checked here.
type CardCodeAndCount struct {
	Card  Card
	Count int
}

func NewCardCodeAndCount(card Card, count int) CardCodeAndCount {
	return CardCodeAndCount{Card: card, Count: count}
}

// CardCodeAndCountFromData resolves code and pairs it with count.
func CardCodeAndCountFromData(code string, count int) (CardCodeAndCount, error) {
	card, err := FromCode(code)
	if err != nil {
		return CardCodeAndCount{}, err
	}
	return NewCardCodeAndCount(card, count), nil
}

type jsonEntry struct {
	CardCode string `json:"cardCode"`
	Count    int    `json:"count"`
}

// MarshalJSON implements json.Marshaler.
func (c CardCodeAndCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEntry{CardCode: c.Card.Code(), Count: c.Count})
}

// UnmarshalJSON implements json.Unmarshaler. The card code must resolve.
func (c *CardCodeAndCount) UnmarshalJSON(data []byte) error {
	var e jsonEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	parsed, err := CardCodeAndCountFromData(e.CardCode, e.Count)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// String implements Stringer.
func (c CardCodeAndCount) String() string {
	return fmt.Sprintf("%dx %s", c.Count, c.Card.Code())
}
