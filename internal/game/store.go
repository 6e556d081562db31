package game

import (
	"fmt"
	"sync"

	"github.com/pixil98/union-domain/internal/world"
)

// World is an immutable snapshot of the room graph and item catalog. A new
// snapshot replaces the old one when the domain (re)registers with a hub.
type World struct {
	Graph   *world.Graph
	Catalog *world.Catalog
}

// Holdings are the item lists the hub hands over on arrival.
type Holdings struct {
	Owned   []*world.Item
	Carried []*world.Item
	Dropped []*world.Item
	Prize   []*world.Item
}

// Store is the single source of truth for player state. The map is guarded
// by mu; each player is guarded by its own lock, which callers hold for the
// whole of a command including any hub call made for it.
type Store struct {
	mu      sync.RWMutex
	world   *World
	players map[string]*PlayerState
}

func NewStore(w *World) *Store {
	return &Store{
		world:   w,
		players: make(map[string]*PlayerState),
	}
}

// World returns the current world snapshot.
func (s *Store) World() *World {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.world
}

// Reset installs a new world and forgets every player.
func (s *Store) Reset(w *World) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world = w
	s.players = make(map[string]*PlayerState)
}

// Len returns the number of known players.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.players)
}

// Acquire locks and returns a player. The returned release func must be called
// once the caller is done, including any outbound calls.
func (s *Store) Acquire(id string) (*PlayerState, func(), error) {
	s.mu.RLock()
	p, ok := s.players[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}

	p.mu.Lock()
	return p, p.mu.Unlock, nil
}

// Arrive creates or relocates a player and installs the hub's view of their
// items. A "login" arrival always starts from a fresh state. Returns the room
// the player arrived in.
func (s *Store) Arrive(id, from string, h Holdings) (string, error) {
	s.mu.Lock()
	w := s.world
	p, ok := s.players[id]
	fresh := !ok || from == "login"

	room, found := w.Graph.Entrance(from)
	if fresh || !found {
		room, found = w.Graph.Entrance("login")
	}
	if !found {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrNoEntrance, from)
	}

	if fresh {
		p = newPlayerState(id, room, w.Catalog)
		s.players[id] = p
	}
	s.mu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.Location = room
	p.install(h)
	return room, nil
}

// install replaces the hand and room buckets with the hub's lists and drops
// any catalog entry the hub now places elsewhere, so each item stays in one
// bucket. Domain items the hub no longer lists anywhere are not restored: they
// may be lying in another domain.
func (p *PlayerState) install(h Holdings) {
	elsewhere := map[world.ItemID]bool{}
	fill := func(b Bucket, items []*world.Item) {
		inv := NewInventory()
		for _, it := range clones(items) {
			if it.ID != "" && elsewhere[it.ID] {
				continue
			}
			if it.ID != "" {
				elsewhere[it.ID] = true
			}
			inv.Add(it)
		}
		p.buckets[b] = inv
	}

	fill(BucketOwned, h.Owned)
	fill(BucketCarried, h.Carried)
	fill(BucketDropped, h.Dropped)
	fill(BucketPrize, h.Prize)

	kept := NewInventory()
	for _, it := range p.buckets[BucketCatalog].Items() {
		if !elsewhere[it.ID] {
			kept.Add(it)
		}
	}
	p.buckets[BucketCatalog] = kept
}

// Depart marks a player as away.
func (s *Store) Depart(id string) error {
	p, release, err := s.Acquire(id)
	if err != nil {
		return err
	}
	defer release()

	p.Location = LocationAway
	return nil
}

// Dropped applies a hub-side drop for the player and returns the room the
// item now lies in.
func (s *Store) Dropped(id string, item world.ItemID) (string, error) {
	w := s.World()
	if !w.Catalog.Contains(item) {
		return "", fmt.Errorf("%w: %s", ErrItemNotRecognized, item)
	}

	p, release, err := s.Acquire(id)
	if err != nil {
		return "", err
	}
	defer release()

	return p.HubDropped(item, w)
}

func clones(items []*world.Item) []*world.Item {
	out := make([]*world.Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it.Clone())
		}
	}
	return out
}
