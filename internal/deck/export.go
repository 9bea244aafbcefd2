package deck

import (
	"strconv"
	"strings"

	"github.com/youruser/deckcodes/internal/cards"
)

// ExportText renders the Deck one entry per line, in deck order:
//
//	# name
//	3x 01SI015 Hecarim
//
// Names come from catalog when it knows the card.
func ExportText(name string, d *Deck, catalog cards.Catalog) string {
	lines := []string{}
	if name != "" {
		lines = append(lines, "# "+name)
	}
	for _, entry := range d.All() {
		line := strconv.Itoa(entry.Count) + "x " + entry.Card.Code()
		if info, ok := catalog.Lookup(entry.Card); ok && info.Name != "" {
			line += " " + info.Name
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}
