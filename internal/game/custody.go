package game

import (
	"fmt"
	"sort"

	"github.com/pixil98/union-domain/internal/world"
)

// Sighting is an item visible in the player's current room and the bucket it
// would be taken from.
type Sighting struct {
	Item   *world.Item
	Bucket Bucket
}

// VisibleItems lists what the player can see in their current room: domain
// items in catalog order (minus puzzle-hidden ones), then items dropped here,
// then any prize unlocked in this room.
func (p *PlayerState) VisibleItems(w *World) []Sighting {
	var out []Sighting

	var room []*world.Item
	for _, it := range p.buckets[BucketCatalog].Items() {
		if it.Location == p.Location && !p.Puzzles.Hides(it.Name) {
			room = append(room, it)
		}
	}
	sort.SliceStable(room, func(i, j int) bool {
		return w.Catalog.Index(room[i].ID) < w.Catalog.Index(room[j].ID)
	})
	for _, it := range room {
		out = append(out, Sighting{Item: it, Bucket: BucketCatalog})
	}

	for _, it := range p.buckets[BucketDropped].Items() {
		if it.Location == p.Location {
			out = append(out, Sighting{Item: it, Bucket: BucketDropped})
		}
	}

	for _, it := range p.buckets[BucketPrize].Items() {
		if it.Depth == nil {
			continue
		}
		if room, ok := p.Puzzles.UnlockRoom(*it.Depth); ok && room == p.Location {
			out = append(out, Sighting{Item: it, Bucket: BucketPrize})
		}
	}

	return out
}

// Take moves an item in reach into the player's hands. Puzzle gates only
// affect what the room lists: an item lying here can be taken by name or id
// whether or not it is shown. Sources are tried in order: catalog items at the
// current room, foreign items dropped here, then prizes. A depth-2 prize is
// only in reach in its unlock room. Domain items land in owned, anything else
// in carried. Returns the source bucket alongside the item.
func (p *PlayerState) Take(token string, w *World) (*world.Item, Bucket, error) {
	for _, from := range []Bucket{BucketCatalog, BucketDropped, BucketPrize} {
		it := p.inReach(from, token)
		if it == nil {
			continue
		}

		to := BucketCarried
		if w.Catalog.Contains(it.ID) {
			to = BucketOwned
		}

		p.buckets[from].RemoveItem(it)
		it.Location = world.LocationInventory
		p.buckets[to].Add(it)
		return it, from, nil
	}

	return nil, "", fmt.Errorf("%w: %s at %s", ErrItemNotFound, token, p.Location)
}

// inReach finds the first item in bucket b matching token that the player can
// pick up from where they stand.
func (p *PlayerState) inReach(b Bucket, token string) *world.Item {
	for _, it := range p.buckets[b].Items() {
		if !it.Matches(token) {
			continue
		}
		switch b {
		case BucketPrize:
			if it.HasDepth(world.MaxDepth) {
				room, ok := p.Puzzles.UnlockRoom(world.MaxDepth)
				if !ok || room != p.Location {
					continue
				}
			}
		default:
			if it.Location != p.Location {
				continue
			}
		}
		return it
	}
	return nil
}

// Drop leaves a held item in the current room. Owned items return to the
// catalog bucket, carried ones go to dropped.
func (p *PlayerState) Drop(token string) (*world.Item, error) {
	if it, err := p.Move(token, BucketOwned, BucketCatalog, p.Location); err == nil {
		return it, nil
	}
	if it, err := p.Move(token, BucketCarried, BucketDropped, p.Location); err == nil {
		return it, nil
	}
	return nil, fmt.Errorf("%w: %s not held", ErrItemNotFound, token)
}

// HubDropped records a drop the hub performed on the player's behalf. The item
// must belong to this domain. Returns the room it now lies in.
func (p *PlayerState) HubDropped(id world.ItemID, w *World) (string, error) {
	ref, ok := w.Catalog.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrItemNotRecognized, id)
	}

	token := string(id)
	if _, err := p.Move(token, BucketCarried, BucketDropped, p.Location); err == nil {
		return p.Location, nil
	}
	if _, err := p.Move(token, BucketOwned, BucketCatalog, p.Location); err == nil {
		return p.Location, nil
	}

	// Not in hand: the hub is authoritative, so relocate wherever we have it.
	for _, b := range []Bucket{BucketCatalog, BucketDropped, BucketPrize} {
		if it := p.buckets[b].Find(token); it != nil {
			it.Location = p.Location
			if b == BucketPrize {
				p.buckets[b].RemoveItem(it)
				p.buckets[BucketCatalog].Add(it)
			}
			return p.Location, nil
		}
	}

	it := ref.Clone()
	it.Location = p.Location
	p.buckets[BucketCatalog].Add(it)
	return p.Location, nil
}
