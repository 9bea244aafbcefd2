package deck

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is a deck written by hand as YAML:
//
//	name: Spectral Riders
//	cards:
//	  - code: 01SI015
//	    count: 3
//
// A File may instead carry an already encoded deck in Code.
type File struct {
	Name  string      `yaml:"name"`
	Code  string      `yaml:"code,omitempty"`
	Cards []FileEntry `yaml:"cards,omitempty"`
}

type FileEntry struct {
	Code  string `yaml:"code"`
	Count int    `yaml:"count"`
}

// ParseFile parses a YAML deck file.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing deck file")
	}
	return &f, nil
}

// Deck builds a Deck from the file's cards, in file order. It stops at the
// first code that does not resolve.
func (f *File) Deck() (*Deck, error) {
	d := New()
	for i, e := range f.Cards {
		if err := d.AddFromData(e.Code, e.Count); err != nil {
			return nil, errors.Wrapf(err, "cards[%d]", i)
		}
	}
	return d, nil
}
