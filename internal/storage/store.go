package storage

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/goccy/go-json"
)

// FileStore loads every *.json asset below dir in fsys once, at construction.
// The domain never writes assets back; player state is process-lifetime only.
type FileStore[T ValidatingSpec] struct {
	dir     string
	records map[Identifier]T
}

func NewFileStore[T ValidatingSpec](fsys fs.FS, dir string) (*FileStore[T], error) {
	s := &FileStore[T]{
		dir:     dir,
		records: map[Identifier]T{},
	}

	err := s.load(fsys)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load(fsys fs.FS) error {
	err := fs.WalkDir(fsys, s.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		asset, err := s.loadAsset(fsys, p)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path.Base(p), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", path.Base(p), err)
		}

		if _, ok := s.records[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", s.dir, err)
	}

	return nil
}

func (s *FileStore[T]) loadAsset(fsys fs.FS, p string) (*Asset[T], error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(data, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}

// Get returns the spec stored under id.
func (s *FileStore[T]) Get(id Identifier) (T, bool) {
	val, ok := s.records[id]
	return val, ok
}

// GetAll returns a copy of every loaded record.
func (s *FileStore[T]) GetAll() map[Identifier]T {
	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}

// Ids returns every loaded identifier in sorted order.
func (s *FileStore[T]) Ids() []Identifier {
	ids := make([]Identifier, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
