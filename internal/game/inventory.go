package game

import "github.com/pixil98/union-domain/internal/world"

// Bucket names one of the disjoint collections a player's items live in.
type Bucket string

const (
	BucketCatalog Bucket = "catalog" // domain items lying in rooms
	BucketOwned   Bucket = "owned"   // domain items in hand
	BucketCarried Bucket = "carried" // foreign items in hand
	BucketDropped Bucket = "dropped" // foreign items left in rooms
	BucketPrize   Bucket = "prize"   // depth-gated reward items
)

var Buckets = []Bucket{BucketCatalog, BucketOwned, BucketCarried, BucketDropped, BucketPrize}

// Inventory is an ordered list of items. Order matters for room listings and
// for which of two same-named items a command picks.
type Inventory struct {
	items []*world.Item
}

func NewInventory(items ...*world.Item) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

// Add appends an item.
func (inv *Inventory) Add(it *world.Item) {
	inv.items = append(inv.items, it)
}

// Find returns the first item matching token by name or id, or nil.
func (inv *Inventory) Find(token string) *world.Item {
	for _, it := range inv.items {
		if it.Matches(token) {
			return it
		}
	}
	return nil
}

// Remove takes out the first item matching token. Returns nil if none matched.
func (inv *Inventory) Remove(token string) *world.Item {
	for i, it := range inv.items {
		if it.Matches(token) {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it
		}
	}
	return nil
}

// RemoveItem takes out exactly the given item.
func (inv *Inventory) RemoveItem(target *world.Item) bool {
	for i, it := range inv.items {
		if it == target {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the items in order. The slice is a copy; the items are not.
func (inv *Inventory) Items() []*world.Item {
	out := make([]*world.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}
