package cards

// Info is the catalog metadata for one card.
type Info struct {
	Card     Card     `json:"-"`
	CardCode string   `json:"cardCode"`
	Name     string   `json:"name"`
	Region   string   `json:"region"`
	Type     string   `json:"type"`
	Rarity   string   `json:"rarity"`
	Cost     int      `json:"cost"`
	Keywords []string `json:"keywords"`
	Text     string   `json:"text"`
	ImageURL string   `json:"imageURL"`
}

// Catalog indexes card metadata by Card. It is read-only once loaded.
type Catalog struct {
	all    []Info
	byCard map[Card]int
}

func NewCatalog(infos []Info) Catalog {
	c := Catalog{all: infos, byCard: make(map[Card]int, len(infos))}
	for i, info := range infos {
		c.byCard[info.Card] = i
	}
	return c
}

// Lookup returns the metadata for card, if the catalog has it.
func (c Catalog) Lookup(card Card) (Info, bool) {
	i, ok := c.byCard[card]
	if !ok {
		return Info{}, false
	}
	return c.all[i], true
}

// All returns every card in load order.
func (c Catalog) All() []Info {
	return c.all
}

func (c Catalog) Len() int {
	return len(c.all)
}
