package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pixil98/union-domain/internal/storage"
)

var (
	ErrNoSuchEdge = errors.New("no such edge")
	ErrNoSuchRoom = errors.New("no such room")
)

// Graph is the immutable room graph. It is shared by every player.
type Graph struct {
	rooms     map[string]*Room
	entrances map[string]string
}

// NewGraph checks that every exit points at a known room (or Exit) and that
// no arrival direction is claimed by two rooms.
func NewGraph(rooms map[storage.Identifier]*Room) (*Graph, error) {
	g := &Graph{
		rooms:     make(map[string]*Room, len(rooms)),
		entrances: map[string]string{},
	}

	for id, room := range rooms {
		g.rooms[string(id)] = room
	}

	for _, id := range g.RoomIds() {
		room := g.rooms[id]
		for dir, dest := range room.Exits {
			if dest == Exit {
				continue
			}
			if _, ok := g.rooms[string(dest)]; !ok {
				return nil, fmt.Errorf("room %s: exit %s: %w: %s", id, dir, ErrNoSuchRoom, dest)
			}
		}
		for _, from := range room.Entrances {
			if other, ok := g.entrances[from]; ok {
				return nil, fmt.Errorf("room %s: entrance %q already used by %s", id, from, other)
			}
			g.entrances[from] = id
		}
	}

	return g, nil
}

// Room returns the room with the given id.
func (g *Graph) Room(id string) (*Room, bool) {
	r, ok := g.rooms[id]
	return r, ok
}

// RoomIds returns every room id in sorted order.
func (g *Graph) RoomIds() []string {
	ids := make([]string, 0, len(g.rooms))
	for id := range g.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Go follows a single directed edge. The returned destination is either a
// room id or Exit; the caller decides what reaching Exit means.
func (g *Graph) Go(from, direction string) (string, error) {
	room, ok := g.rooms[from]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSuchRoom, from)
	}

	dest, ok := room.Exits[direction]
	if !ok {
		return "", ErrNoSuchEdge
	}

	return string(dest), nil
}

// Entrance returns the room a player lands in when arriving from the given
// direction (or "login"/"direct").
func (g *Graph) Entrance(from string) (string, bool) {
	id, ok := g.entrances[from]
	return id, ok
}
