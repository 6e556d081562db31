package world

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/pixil98/union-domain/internal/storage"
)

//go:embed assets
var embedded embed.FS

// DefaultAssets returns the built-in Illini Union rooms and items.
func DefaultAssets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return sub
}

// Load reads rooms/ and items/ asset directories from fsys.
func Load(fsys fs.FS) (*Graph, *Catalog, error) {
	rooms, err := storage.NewFileStore[*Room](fsys, "rooms")
	if err != nil {
		return nil, nil, fmt.Errorf("creating room store: %w", err)
	}

	items, err := storage.NewFileStore[*ItemSpec](fsys, "items")
	if err != nil {
		return nil, nil, fmt.Errorf("creating item store: %w", err)
	}

	graph, err := NewGraph(rooms.GetAll())
	if err != nil {
		return nil, nil, fmt.Errorf("building room graph: %w", err)
	}

	specs := make([]*ItemSpec, 0, len(items.Ids()))
	for _, id := range items.Ids() {
		spec, _ := items.Get(id)
		if spec.Location != "" {
			if _, ok := graph.Room(spec.Location); !ok {
				return nil, nil, fmt.Errorf("item %s: %w: %s", id, ErrNoSuchRoom, spec.Location)
			}
		}
		specs = append(specs, spec)
	}
	sort.SliceStable(specs, func(i, j int) bool { return specs[i].Order < specs[j].Order })

	catalog := make([]*Item, len(specs))
	for i, spec := range specs {
		it := spec.Item
		catalog[i] = &it
	}

	return graph, NewCatalog(catalog), nil
}
