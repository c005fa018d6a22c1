// Package catalog holds the ordered list of events a scorecard document can
// contain. Scorecards are always emitted in catalog order, regardless of the
// order in which events were submitted.
package catalog

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/abrezinsky/scorecards/internal/errors"
)

// defaultEvents is the built-in catalog, one event per line, Cap On Pen last
var defaultEvents = []string{
	"Face-Turning Octahedron (FTO)",
	"Mirror Blocks",
	"Kilominx",
	"Redi Cube",
	"Gear Cube",
	"Ivy Cube",
	"Master Pyraminx",
	"2x2x2 Blindfolded",
	"Clock One-Handed",
	"3x3x3 No Inspection",
	"Team Blindfolded",
	"2-man Mini Guildford",
	"Rubik’s Magic",
	"Master Magic",
	"3x3x3 With Feet",
	"3x3x3 Match The Scramble",
	"3x3x3 Supersolve",
	"3x3x3 Scrambling",
	"4x4x4 One-Handed",
	"2x2x2-4x4x4 Relay",
	"3x3x3 With Oven Mitts",
	"15 Puzzle",
	"Triangular Clock",
	"Pentagonal Clock",
	"Super Pentagonal Clock",
	"Cap On Pen",
}

// Catalog is an ordered, read-only set of event names
type Catalog struct {
	names []string
	index map[string]int
}

// New builds a catalog from names. Blank names are dropped and duplicates
// keep their first position.
func New(names ...string) *Catalog {
	c := &Catalog{index: make(map[string]int, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := c.index[name]; dup {
			continue
		}
		c.index[name] = len(c.names)
		c.names = append(c.names, name)
	}
	return c
}

// Default returns the built-in event catalog
func Default() *Catalog {
	return New(defaultEvents...)
}

// file is the on-disk catalog format
type file struct {
	Events []string `toml:"events"`
}

// Load reads a catalog from a TOML file of the form
//
//	events = ["Kilominx", "Redi Cube"]
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrap(err, errors.ErrInternal, "read catalog file")
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "parse catalog")
	}
	c := New(f.Events...)
	if c.Len() == 0 {
		return nil, errors.InvalidInput("catalog has no events")
	}
	return c, nil
}

// Names returns a copy of the event names in catalog order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of events
func (c *Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether name is a catalog event
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Index returns the position of name in the catalog, or -1
func (c *Catalog) Index(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}
