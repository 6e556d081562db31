package messaging

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/hub"
)

// Identity tells the publisher which domain id to put in subjects.
type Identity interface {
	Registration() (*hub.Registration, bool)
}

// EventPublisher publishes domain events as JSON on domain.<id>.events.
type EventPublisher struct {
	server   *NatsServer
	identity Identity
}

func NewEventPublisher(server *NatsServer, identity Identity) *EventPublisher {
	return &EventPublisher{server: server, identity: identity}
}

// Subject returns the subject events are currently published on.
func (p *EventPublisher) Subject() string {
	id := "unregistered"
	if reg, ok := p.identity.Registration(); ok {
		id = string(reg.Id)
	}
	return fmt.Sprintf("domain.%s.events", id)
}

func (p *EventPublisher) PublishEvent(_ context.Context, ev game.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", ev.Type, err)
	}
	return p.server.Publish(p.Subject(), data)
}
