package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/union-domain/internal/display"
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/world"
)

// CommandFunc runs one command for a locked player and returns its narration.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) (string, error)

// CommandContext is everything a command sees. The player is locked for the
// lifetime of the context.
type CommandContext struct {
	Player  *game.PlayerState
	World   *game.World
	Command Command
}

// Hub is the part of the hub protocol commands need.
type Hub interface {
	Transfer(ctx context.Context, user string, item world.ItemID, to string) error
	Score(ctx context.Context, user string, score float64) error
}

type Handler struct {
	store     *game.Store
	hub       Hub
	publisher game.Publisher
	wrapWidth int
	rules     []rule
}

func NewHandler(store *game.Store, hub Hub, publisher game.Publisher, opts ...HandlerOpt) *Handler {
	h := &Handler{
		store:     store,
		hub:       hub,
		publisher: publisher,
	}
	if h.publisher == nil {
		h.publisher = game.NopPublisher{}
	}

	for _, opt := range opts {
		opt(h)
	}

	h.rules = h.fixedRules()
	return h
}

// Exec runs the hub's tokens as a command for user. The player stays locked
// until the command, including any hub call it makes, has finished.
func (h *Handler) Exec(ctx context.Context, user string, tokens []string) (string, error) {
	p, release, err := h.store.Acquire(user)
	if errors.Is(err, game.ErrPlayerNotFound) {
		return MsgNotArrived, nil
	}
	if err != nil {
		return "", err
	}
	defer release()

	if p.Away() {
		return "", fmt.Errorf("%w: %s", game.ErrPlayerAway, user)
	}

	cmdCtx := &CommandContext{
		Player:  p,
		World:   h.store.World(),
		Command: Parse(tokens),
	}

	out, err := h.dispatch(ctx, cmdCtx)

	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message, nil
	}
	if err != nil {
		return "", err
	}
	return out, nil
}

func (h *Handler) dispatch(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	cmd := cmdCtx.Command
	if cmd.Empty() {
		return MsgUnhandled, nil
	}

	for _, r := range h.rules {
		if r.matches(cmdCtx) {
			return r.run(ctx, cmdCtx)
		}
	}

	switch cmd.Verb {
	case "look":
		return h.look(ctx, cmdCtx)
	case "take":
		return h.take(ctx, cmdCtx)
	case "drop":
		return h.drop(ctx, cmdCtx)
	case "go":
		return h.move(ctx, cmdCtx)
	}

	if out, ok := interact(cmdCtx); ok {
		return out, nil
	}
	return MsgUnhandled, nil
}

// describeRoom renders the current room: its description followed by one line
// per visible item.
func (h *Handler) describeRoom(cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player
	room, ok := cmdCtx.World.Graph.Room(p.Location)
	if !ok {
		return "", fmt.Errorf("%w: %s", world.ErrNoSuchRoom, p.Location)
	}

	out := display.Wrap(room.Description, h.wrapWidth)
	for _, s := range p.VisibleItems(cmdCtx.World) {
		line, err := ExpandTemplate(msgRoomItem, itemRef(s.Item))
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", s.Item.Name, err)
		}
		out += "\n" + line
	}
	return out, nil
}

// advance moves a puzzle forward and reports it. Refused transitions are a
// no-op: the narration has already told the player what happened.
func (h *Handler) advance(ctx context.Context, cmdCtx *CommandContext, pz game.Puzzle, to game.Phase) {
	if err := cmdCtx.Player.Puzzles.Advance(pz, to); err != nil {
		slog.DebugContext(ctx, "puzzle transition refused", "user", cmdCtx.Player.Id, "error", err)
		return
	}
	h.publish(ctx, game.Event{
		Type:   game.EventPuzzle,
		User:   cmdCtx.Player.Id,
		Room:   cmdCtx.Player.Location,
		Puzzle: pz.Name,
		Phase:  string(to),
	})
}

// publish sends an event. Delivery is best effort and never fails a command.
func (h *Handler) publish(ctx context.Context, ev game.Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	if err := h.publisher.PublishEvent(ctx, ev); err != nil {
		slog.WarnContext(ctx, "publishing event", "type", ev.Type, "user", ev.User, "error", err)
	}
}

func render(tmpl string, data any) (string, error) {
	out, err := ExpandTemplate(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("rendering narration: %w", err)
	}
	return out, nil
}

func itemRef(it *world.Item) ItemRef {
	return ItemRef{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
	}
}
