package world

import (
	"errors"
	"fmt"
)

var ErrCatalogSize = errors.New("catalog size mismatch")

// Catalog is the ordered, immutable list of items this domain owns. Items are
// never mutated through the catalog; players work on clones.
type Catalog struct {
	items []*Item
	byID  map[ItemID]*Item
	index map[ItemID]int
}

func NewCatalog(items []*Item) *Catalog {
	c := &Catalog{
		items: make([]*Item, len(items)),
		byID:  map[ItemID]*Item{},
		index: map[ItemID]int{},
	}
	for i, it := range items {
		c.items[i] = it.Clone()
		if it.ID != "" {
			c.byID[it.ID] = c.items[i]
			c.index[it.ID] = i
		}
	}
	return c
}

// Assign returns a new catalog with hub-issued ids applied in order. The
// receiver is left untouched so a failed registration keeps the old catalog.
func (c *Catalog) Assign(ids []ItemID) (*Catalog, error) {
	if len(ids) != len(c.items) {
		return nil, fmt.Errorf("%w: %d items, %d ids", ErrCatalogSize, len(c.items), len(ids))
	}

	items := make([]*Item, len(c.items))
	seen := map[ItemID]bool{}
	for i, it := range c.items {
		if ids[i] == "" {
			return nil, fmt.Errorf("item %s: empty id", it.Name)
		}
		if seen[ids[i]] {
			return nil, fmt.Errorf("item %s: duplicate id %s", it.Name, ids[i])
		}
		seen[ids[i]] = true

		items[i] = it.Clone()
		items[i].ID = ids[i]
	}

	return NewCatalog(items), nil
}

// Items returns the catalog items in order. Callers must Clone before mutating.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Clones returns a fresh per-player copy of every item.
func (c *Catalog) Clones() []*Item {
	out := make([]*Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

// Get looks an item up by its hub-assigned id.
func (c *Catalog) Get(id ItemID) (*Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Contains reports whether id belongs to this domain.
func (c *Catalog) Contains(id ItemID) bool {
	_, ok := c.byID[id]
	return ok
}

// Index returns the catalog position of id, or -1 for foreign items.
func (c *Catalog) Index(id ItemID) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Registered reports whether the hub has assigned ids to every item.
func (c *Catalog) Registered() bool {
	return len(c.byID) == len(c.items)
}
