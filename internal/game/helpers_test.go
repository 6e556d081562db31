package game

import (
	"testing"

	"github.com/pixil98/union-domain/internal/world"
)

// testWorld loads the built-in assets and registers ids 1-6 in catalog order:
// i-card, sheet-music, drink-voucher, peppermint-mocha, piano-key, rubber-gloves.
func testWorld(t *testing.T) *World {
	t.Helper()

	graph, catalog, err := world.Load(world.DefaultAssets())
	if err != nil {
		t.Fatalf("loading assets: %v", err)
	}
	catalog, err = catalog.Assign([]world.ItemID{"1", "2", "3", "4", "5", "6"})
	if err != nil {
		t.Fatalf("assigning ids: %v", err)
	}
	return &World{Graph: graph, Catalog: catalog}
}

func catalogItem(t *testing.T, w *World, name string) *world.Item {
	t.Helper()

	for _, it := range w.Catalog.Items() {
		if it.Name == name {
			return it.Clone()
		}
	}
	t.Fatalf("no catalog item %q", name)
	return nil
}

func depth(d int) *int {
	return &d
}

func names(items []*world.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func sightingNames(ss []Sighting) []string {
	out := []string{}
	for _, s := range ss {
		out = append(out, s.Item.Name)
	}
	return out
}

func assertCustody(t *testing.T, p *PlayerState) {
	t.Helper()

	if err := p.CheckCustody(); err != nil {
		t.Fatalf("custody invariant: %v", err)
	}
}

// player looks up a known player. Tests using it run single-threaded, so the
// lock is released straight away.
func player(t *testing.T, s *Store, id string) *PlayerState {
	t.Helper()

	p, release, err := s.Acquire(id)
	if err != nil {
		t.Fatalf("acquiring %s: %v", id, err)
	}
	release()
	return p
}
