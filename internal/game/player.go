package game

import (
	"fmt"
	"sync"

	"github.com/pixil98/union-domain/internal/world"
)

// LocationAway marks a player who has left the domain. Commands are refused
// until the next arrival.
const LocationAway = "away"

// PlayerState holds all mutable state for one player. It is only touched by
// requests for that player, and only while its lock is held.
type PlayerState struct {
	mu sync.Mutex

	Id       string
	Location string
	Puzzles  *PuzzleState

	// Scored is set once the completion score has been sent to the hub.
	Scored bool

	buckets map[Bucket]*Inventory
}

func newPlayerState(id, location string, catalog *world.Catalog) *PlayerState {
	p := &PlayerState{
		Id:       id,
		Location: location,
		Puzzles:  NewPuzzleState(),
		buckets:  make(map[Bucket]*Inventory, len(Buckets)),
	}
	for _, b := range Buckets {
		p.buckets[b] = NewInventory()
	}
	p.buckets[BucketCatalog] = NewInventory(catalog.Clones()...)
	return p
}

// Bucket returns the named bucket.
func (p *PlayerState) Bucket(b Bucket) *Inventory {
	return p.buckets[b]
}

// Away reports whether the player has departed.
func (p *PlayerState) Away() bool {
	return p.Location == LocationAway
}

// Holds reports whether the player has a domain item with the given name in hand.
func (p *PlayerState) Holds(name string) bool {
	return p.buckets[BucketOwned].Find(name) != nil
}

// Move transfers the first item matching token from one bucket to another and
// stamps its location tag.
func (p *PlayerState) Move(token string, from, to Bucket, tag string) (*world.Item, error) {
	src, dst := p.buckets[from], p.buckets[to]
	if src == nil || dst == nil {
		return nil, fmt.Errorf("moving %s from %s to %s: unknown bucket", token, from, to)
	}

	it := src.Remove(token)
	if it == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrItemNotFound, token, from)
	}

	it.Location = tag
	dst.Add(it)
	return it, nil
}

// Consume removes a held domain item from play entirely.
func (p *PlayerState) Consume(token string) (*world.Item, error) {
	it := p.buckets[BucketOwned].Remove(token)
	if it == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrItemNotFound, token, BucketOwned)
	}
	return it, nil
}

// CheckCustody verifies that no item sits in two buckets at once.
func (p *PlayerState) CheckCustody() error {
	seen := map[world.ItemID]Bucket{}
	ptrs := map[*world.Item]Bucket{}
	for _, b := range Buckets {
		for _, it := range p.buckets[b].Items() {
			if prev, ok := ptrs[it]; ok {
				return fmt.Errorf("%w: %s in %s and %s", ErrCustody, it.Name, prev, b)
			}
			ptrs[it] = b

			if it.ID == "" {
				continue
			}
			if prev, ok := seen[it.ID]; ok {
				return fmt.Errorf("%w: %s (%s) in %s and %s", ErrCustody, it.Name, it.ID, prev, b)
			}
			seen[it.ID] = b
		}
	}
	return nil
}
