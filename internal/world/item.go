package world

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pixil98/go-errors"
)

// LocationInventory tags an item that is in a player's hands.
const LocationInventory = "inventory"

// MaxDepth is the depth tier of the item that completes the domain.
const MaxDepth = 2

// ItemID is the hub-assigned item identifier. The hub sends numbers, but ids
// are also typed by players as command tokens, so they are kept as strings.
type ItemID string

func (id ItemID) String() string {
	return string(id)
}

func (id *ItemID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("unmarshalling item id: %w", err)
		}
		*id = ItemID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("unmarshalling item id: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// MarshalJSON writes integer ids as JSON numbers so the hub gets back what it
// issued. Only the canonical form is written raw; "+5" or "007" stay strings.
func (id ItemID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Item is one collectible object. Items loaded from assets have no ID until the
// hub assigns one at registration; items received from the hub may come from
// any domain.
type Item struct {
	ID          ItemID            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Verbs       map[string]string `json:"verb"`
	Location    string            `json:"location,omitempty"`
	Depth       *int              `json:"depth,omitempty"`
}

// Matches reports whether a command token names this item, by name or by id.
func (i *Item) Matches(token string) bool {
	if token == "" {
		return false
	}
	return i.Name == token || (i.ID != "" && string(i.ID) == token)
}

// Interact returns the response text for a custom verb. Verbs declared with an
// empty response are treated as undeclared.
func (i *Item) Interact(verb string) (string, bool) {
	text, ok := i.Verbs[verb]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// HasDepth reports whether the item is a prize of the given depth tier.
func (i *Item) HasDepth(depth int) bool {
	return i.Depth != nil && *i.Depth == depth
}

// Clone returns a copy that can carry its own location tag. Verbs and Depth are
// never mutated and stay shared.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// ItemSpec is the asset form of an item. Order fixes the catalog position,
// which is also the order items are submitted to the hub.
type ItemSpec struct {
	Item
	Order int `json:"order"`
}

func (s *ItemSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if s.Description == "" {
		el.Add(fmt.Errorf("item description is required"))
	}
	if s.ID != "" {
		el.Add(fmt.Errorf("item id is assigned by the hub and must not be set"))
	}
	if s.Depth != nil && (*s.Depth < 0 || *s.Depth > MaxDepth) {
		el.Add(fmt.Errorf("item depth %d out of range 0-%d", *s.Depth, MaxDepth))
	}

	return el.Err()
}
