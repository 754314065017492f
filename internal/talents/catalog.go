package talents

import (
	"fmt"
	"sort"
)

// MinID and MaxID bound the valid talent id range.
const (
	MinID = 1
	MaxID = 34
)

// Catalog is an immutable lookup over the 34 talent entries.
// Construct it once at startup and share it freely; reads need no locking.
type Catalog struct {
	byID map[int]Talent
}

// NewCatalog builds a catalog from the given entries. Entries must have
// unique ids within [MinID, MaxID] and non-empty names; anything else is a
// programming error in static data.
func NewCatalog(entries []Talent) (*Catalog, error) {
	byID := make(map[int]Talent, len(entries))
	for _, t := range entries {
		if t.ID < MinID || t.ID > MaxID {
			return nil, fmt.Errorf("talent id %d out of range [%d, %d]", t.ID, MinID, MaxID)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("talent %d has empty name", t.ID)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate talent id %d", t.ID)
		}
		byID[t.ID] = t
	}
	return &Catalog{byID: byID}, nil
}

// Default returns the catalog of all 34 talents. It panics on malformed
// static data, which the test suite guards against.
func Default() *Catalog {
	c, err := NewCatalog(allTalents)
	if err != nil {
		panic(err)
	}
	return c
}

// ByID returns the talent with the given id.
func (c *Catalog) ByID(id int) (Talent, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// All returns every talent ordered by id.
func (c *Catalog) All() []Talent {
	out := make([]Talent, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByCategory returns all talents belonging to the given category, ordered by id.
func (c *Catalog) ByCategory(category Category) []Talent {
	var out []Talent
	for _, t := range c.All() {
		if t.In(category) {
			out = append(out, t)
		}
	}
	return out
}
