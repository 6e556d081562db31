package world

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-testutil"
)

func TestLoad_DefaultAssets(t *testing.T) {
	graph, catalog, err := Load(DefaultAssets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expRooms := []string{"closet", "courtyard", "hallway", "lobby", "lounge", "starbucks"}
	if diff := cmp.Diff(expRooms, graph.RoomIds()); diff != "" {
		t.Errorf("rooms mismatch (-exp +got):\n%s", diff)
	}

	var names []string
	for _, it := range catalog.Items() {
		names = append(names, it.Name)
	}
	expNames := []string{"i-card", "sheet-music", "drink-voucher", "peppermint-mocha", "piano-key", "rubber-gloves"}
	if diff := cmp.Diff(expNames, names); diff != "" {
		t.Errorf("catalog order mismatch (-exp +got):\n%s", diff)
	}

	for from, exp := range map[string]string{
		"login":  "lobby",
		"direct": "lobby",
		"south":  "lobby",
		"west":   "hallway",
		"east":   "courtyard",
		"north":  "lounge",
	} {
		got, ok := graph.Entrance(from)
		testutil.AssertEqual(t, from+" found", ok, true)
		testutil.AssertEqual(t, from+" room", got, exp)
	}

	dest, err := graph.Go("lobby", "north")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "lobby north", dest, Exit)

	var key *Item
	for _, it := range catalog.Items() {
		if it.Name == "piano-key" {
			key = it
		}
	}
	if key == nil {
		t.Fatal("piano-key not loaded")
	}
	testutil.AssertEqual(t, "piano-key depth", key.HasDepth(1), true)
	testutil.AssertEqual(t, "registered", catalog.Registered(), false)
}

func TestLoad_UnknownItemLocation(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms/lobby.json": {Data: []byte(`{"version":1,"id":"lobby","spec":{"description":"Lobby."}}`)},
		"items/card.json":  {Data: []byte(`{"version":1,"id":"card","spec":{"name":"card","description":"A card.","location":"attic"}}`)},
	}

	_, _, err := Load(fsys)
	testutil.AssertErrorContains(t, err, "item card: no such room: attic")
}
