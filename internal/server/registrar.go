package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/hub"
	"github.com/pixil98/union-domain/internal/world"
)

// DomainInfo is how this domain describes itself to a hub.
type DomainInfo struct {
	URL         string
	Name        string
	Description string
}

// Registrar registers the domain with a hub and installs the resulting world.
// New credentials and the world they belong to are swapped in together: gate
// is held for writing across the swap, and for reading by every request that
// checked the old secret or runs against the old world.
type Registrar struct {
	mu   sync.Mutex
	gate sync.RWMutex

	client *hub.Client
	store  *game.Store
	graph  *world.Graph
	base   *world.Catalog
	info   DomainInfo

	// autoURL, when set, is registered with on Tick until it succeeds.
	autoURL string
}

func NewRegistrar(client *hub.Client, store *game.Store, graph *world.Graph, base *world.Catalog, info DomainInfo, autoURL string) *Registrar {
	return &Registrar{
		client:  client,
		store:   store,
		graph:   graph,
		base:    base,
		info:    info,
		autoURL: autoURL,
	}
}

// Register announces the domain to the hub at hubURL, applies the issued item
// ids and clears every player.
func (r *Registrar) Register(ctx context.Context, hubURL string) (*hub.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, err := r.client.Announce(ctx, hubURL, hub.RegisterRequest{
		URL:         r.info.URL,
		Name:        r.info.Name,
		Description: r.info.Description,
		Items:       r.base.Clones(),
	})
	if err != nil {
		return nil, err
	}

	catalog, err := r.base.Assign(reg.Items)
	if err != nil {
		return nil, fmt.Errorf("applying item ids: %w", err)
	}

	r.gate.Lock()
	r.client.Use(reg)
	r.store.Reset(&game.World{Graph: r.graph, Catalog: catalog})
	r.gate.Unlock()

	slog.InfoContext(ctx, "world reset", "domain", reg.Id, "items", catalog.Len())
	return reg, nil
}

// Admit checks secret against the current credentials. On success the
// credentials and world stay in place until release is called.
func (r *Registrar) Admit(secret string) (release func(), ok bool) {
	r.gate.RLock()
	if !r.client.Verify(secret) {
		r.gate.RUnlock()
		return nil, false
	}
	return r.gate.RUnlock, true
}

// Hold keeps the current credentials and world in place until release is
// called.
func (r *Registrar) Hold() (release func()) {
	r.gate.RLock()
	return r.gate.RUnlock
}

// Registered reports whether the domain holds hub credentials.
func (r *Registrar) Registered() bool {
	_, ok := r.client.Registration()
	return ok
}

// Tick retries automatic registration. Failures are logged and retried on the
// next tick.
func (r *Registrar) Tick(ctx context.Context) error {
	if r.autoURL == "" || r.Registered() {
		return nil
	}

	if _, err := r.Register(ctx, r.autoURL); err != nil {
		slog.WarnContext(ctx, "automatic registration failed", "hub", r.autoURL, "error", err)
	}
	return nil
}
