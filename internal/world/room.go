package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/union-domain/internal/storage"
)

// Exit is the sentinel edge target that hands the player back to the hub.
const Exit = "exit"

// Room is a location within the domain.
type Room struct {
	Description string                        `json:"description"`
	Exits       map[string]storage.Identifier `json:"exits"`               // direction -> room id or Exit
	Entrances   []string                      `json:"entrances,omitempty"` // arrival directions that land here
}

// Validate satisfies storage.ValidatingSpec. Exit targets are checked against
// the other rooms by NewGraph.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for dir, dest := range r.Exits {
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: destination is required", dir))
		}
	}

	return el.Err()
}
