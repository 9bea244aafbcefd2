package cards

import "strings"

// FilterOptions selects catalog cards. Empty fields match everything.
type FilterOptions struct {
	Regions   []string `json:"regions"`
	Types     []string `json:"types"`
	Rarities  []string `json:"rarities"`
	Costs     []int    `json:"costs"`
	Keywords  []string `json:"keywords"`
	FreeWords string   `json:"freeWords"`
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.EqualFold(h, n) {
				return true
			}
		}
	}
	return false
}

func Filter(infos []Info, opt FilterOptions) []Info {
	out := []Info{}
	for _, c := range infos {
		if len(opt.Regions) > 0 && !containsAny([]string{c.Region, c.Card.Faction.String()}, opt.Regions) {
			continue
		}
		if len(opt.Types) > 0 && !containsAny([]string{c.Type}, opt.Types) {
			continue
		}
		if len(opt.Rarities) > 0 && !containsAny([]string{c.Rarity}, opt.Rarities) {
			continue
		}
		if len(opt.Costs) > 0 {
			matched := false
			for _, co := range opt.Costs {
				if c.Cost == co {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Keywords) > 0 && !containsAny(c.Keywords, opt.Keywords) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(c.Name), k) &&
					!strings.Contains(strings.ToLower(c.Text), k) &&
					!strings.Contains(strings.ToLower(strings.Join(c.Keywords, " ")), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
