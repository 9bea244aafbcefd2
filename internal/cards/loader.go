package cards

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Catalog files looked for in a data directory, in load order.
var catalogFiles = []string{"cards.csv", "custom_cards.csv"}

func parseListCell(s string) []string {
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// LoadCatalogFromDataDir loads the card catalog CSVs from a data directory.
// Missing files are skipped, but at least one must be present.
// A card listed again in a later file replaces the earlier entry.
func LoadCatalogFromDataDir(dataDir string) (Catalog, error) {
	var all []Info
	var found bool
	for _, name := range catalogFiles {
		f := filepath.Join(dataDir, name)
		if _, err := os.Stat(f); err != nil {
			continue
		}
		found = true
		infos, err := loadSingleCSV(f)
		if err != nil {
			return Catalog{}, errors.Wrapf(err, "loading %s", f)
		}
		all = append(all, infos...)
	}
	if !found {
		return Catalog{}, errors.Errorf("no catalog CSVs found in %s", dataDir)
	}
	return NewCatalog(dedupe(all)), nil
}

// dedupe keeps the last Info per card, at the position of its first appearance.
func dedupe(infos []Info) []Info {
	idx := make(map[Card]int, len(infos))
	out := make([]Info, 0, len(infos))
	for _, info := range infos {
		if i, ok := idx[info.Card]; ok {
			out[i] = info
			continue
		}
		idx[info.Card] = len(out)
		out = append(out, info)
	}
	return out
}

func loadSingleCSV(path string) ([]Info, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	if _, ok := cols["cardCode"]; !ok {
		return nil, errors.Errorf("csv %s has no cardCode column", path)
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Info{}
	for i, row := range rows[1:] {
		code := get(row, "cardCode")
		card, err := FromCode(code)
		if err != nil {
			// Header is line 1.
			return nil, errors.Wrapf(err, "line %d", i+2)
		}
		info := Info{
			Card:     card,
			CardCode: card.Code(),
			Name:     get(row, "name"),
			Region:   get(row, "region"),
			Type:     get(row, "type"),
			Rarity:   get(row, "rarity"),
			Text:     get(row, "text"),
			ImageURL: get(row, "imageURL"),
			Keywords: parseListCell(get(row, "keywords")),
		}
		if cost := get(row, "cost"); cost != "" && cost != "-" {
			v, err := strconv.Atoi(cost)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: cost", i+2)
			}
			info.Cost = v
		}
		out = append(out, info)
	}
	return out, nil
}
