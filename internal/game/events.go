package game

import (
	"context"
	"time"

	"github.com/pixil98/union-domain/internal/world"
)

// EventType names something that happened to a player in this domain.
type EventType string

const (
	EventArrived  EventType = "arrived"
	EventDeparted EventType = "departed"
	EventMoved    EventType = "moved"
	EventTaken    EventType = "taken"
	EventDropped  EventType = "dropped"
	EventPuzzle   EventType = "puzzle"
	EventScored   EventType = "scored"
)

// Event is published for observers of the domain. Delivery is best effort.
type Event struct {
	Type   EventType    `json:"type"`
	User   string       `json:"user"`
	Room   string       `json:"room,omitempty"`
	Item   world.ItemID `json:"item,omitempty"`
	Puzzle string       `json:"puzzle,omitempty"`
	Phase  string       `json:"phase,omitempty"`
	Time   time.Time    `json:"time"`
}

// Publisher delivers domain events.
type Publisher interface {
	PublishEvent(ctx context.Context, ev Event) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, Event) error {
	return nil
}
