package commands

import (
	"context"
	"sync"
	"testing"

	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/world"
)

type transferCall struct {
	User string
	Item world.ItemID
	To   string
}

type scoreCall struct {
	User  string
	Score float64
}

// fakeHub records every outbound call. err, when set, is returned by all of them.
type fakeHub struct {
	mu        sync.Mutex
	err       error
	transfers []transferCall
	scores    []scoreCall
}

func (f *fakeHub) Transfer(_ context.Context, user string, item world.ItemID, to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transfers = append(f.transfers, transferCall{User: user, Item: item, To: to})
	return f.err
}

func (f *fakeHub) Score(_ context.Context, user string, score float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores = append(f.scores, scoreCall{User: user, Score: score})
	return f.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []game.Event
}

func (r *recordingPublisher) PublishEvent(_ context.Context, ev game.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingPublisher) types() []game.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []game.EventType{}
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	world   *game.World
	store   *game.Store
	hub     *fakeHub
	pub     *recordingPublisher
	handler *Handler
}

// newFixture registers the built-in assets with ids 1-6 in catalog order:
// i-card, sheet-music, drink-voucher, peppermint-mocha, piano-key, rubber-gloves.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	graph, catalog, err := world.Load(world.DefaultAssets())
	if err != nil {
		t.Fatalf("loading assets: %v", err)
	}
	catalog, err = catalog.Assign([]world.ItemID{"1", "2", "3", "4", "5", "6"})
	if err != nil {
		t.Fatalf("assigning ids: %v", err)
	}

	w := &game.World{Graph: graph, Catalog: catalog}
	f := &fixture{
		world: w,
		store: game.NewStore(w),
		hub:   &fakeHub{},
		pub:   &recordingPublisher{},
	}
	f.handler = NewHandler(f.store, f.hub, f.pub)
	return f
}

// arrive logs alice in and places her in room holding the named domain items.
func (f *fixture) arrive(t *testing.T, room string, owned ...string) *game.PlayerState {
	t.Helper()

	var h game.Holdings
	for _, name := range owned {
		c := catalogItem(t, f.world.Catalog, name)
		c.Location = world.LocationInventory
		h.Owned = append(h.Owned, c)
	}

	if _, err := f.store.Arrive("alice", "login", h); err != nil {
		t.Fatalf("arriving: %v", err)
	}
	p, release, err := f.store.Acquire("alice")
	if err != nil {
		t.Fatalf("acquiring: %v", err)
	}
	defer release()

	p.Location = room
	return p
}

// exec runs a space-free token list for alice and fails the test on error.
func (f *fixture) exec(t *testing.T, tokens ...string) string {
	t.Helper()

	out, err := f.handler.Exec(context.Background(), "alice", tokens)
	if err != nil {
		t.Fatalf("exec %v: %v", tokens, err)
	}
	return out
}

func (f *fixture) roomText(t *testing.T, id string) string {
	t.Helper()

	r, ok := f.world.Graph.Room(id)
	if !ok {
		t.Fatalf("no room %q", id)
	}
	return r.Description
}

func depth(d int) *int {
	return &d
}

func catalogItem(t *testing.T, c *world.Catalog, name string) *world.Item {
	t.Helper()

	for _, it := range c.Items() {
		if it.Name == name {
			return it.Clone()
		}
	}
	t.Fatalf("no catalog item %q", name)
	return nil
}
