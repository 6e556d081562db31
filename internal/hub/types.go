package hub

import (
	"github.com/pixil98/union-domain/internal/world"
)

// DomainID is the id the hub assigns this domain. Like item ids it may be sent
// as a number.
type DomainID string

func (d *DomainID) UnmarshalJSON(b []byte) error {
	var id world.ItemID
	if err := id.UnmarshalJSON(b); err != nil {
		return err
	}
	*d = DomainID(id)
	return nil
}

func (d DomainID) MarshalJSON() ([]byte, error) {
	return world.ItemID(d).MarshalJSON()
}

// Registration is what the hub issued when this domain registered.
type Registration struct {
	HubURL string
	Id     DomainID
	Secret string
	Items  []world.ItemID
}

// RegisterRequest describes this domain to the hub.
type RegisterRequest struct {
	URL         string        `json:"url"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Items       []*world.Item `json:"items"`
}

type registerResponse struct {
	Id     DomainID       `json:"id"`
	Secret string         `json:"secret"`
	Items  []world.ItemID `json:"items"`
}

type transferRequest struct {
	Domain DomainID     `json:"domain"`
	Secret string       `json:"secret"`
	User   string       `json:"user"`
	Item   world.ItemID `json:"item"`
	To     string       `json:"to"`
}

type scoreRequest struct {
	Domain DomainID `json:"domain"`
	Secret string   `json:"secret"`
	User   string   `json:"user"`
	Score  float64  `json:"score"`
}

// errorBody is the hub's error shape. Any response carrying it is a failure.
type errorBody struct {
	Error string `json:"error"`
}
