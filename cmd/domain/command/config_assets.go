package command

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pixil98/union-domain/internal/world"
)

type AssetsConfig struct {
	// Path is a directory with rooms/ and items/ asset trees. Empty uses the
	// assets built into the binary.
	Path string `json:"path" env:"DOMAIN_ASSETS_PATH"`
}

func (c *AssetsConfig) validate() error {
	if c.Path == "" {
		return nil
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("assets: invalid path %q: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("assets: path %q is not a directory", c.Path)
	}

	return nil
}

func (c *AssetsConfig) fs() fs.FS {
	if c.Path == "" {
		return world.DefaultAssets()
	}
	return os.DirFS(c.Path)
}

func (c *AssetsConfig) load() (*world.Graph, *world.Catalog, error) {
	graph, catalog, err := world.Load(c.fs())
	if err != nil {
		return nil, nil, fmt.Errorf("loading assets: %w", err)
	}
	return graph, catalog, nil
}
