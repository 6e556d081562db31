package commands

import (
	"context"
	"errors"

	"github.com/pixil98/union-domain/internal/game"
)

// drop leaves a held item in the current room. The hub is not told; it learns
// the location from the next arrival.
func (h *Handler) drop(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	token := cmdCtx.Command.Object()
	if token == "" {
		return "", NewUserError(msgDropWhat)
	}

	p := cmdCtx.Player
	it, err := p.Drop(token)
	if errors.Is(err, game.ErrItemNotFound) {
		msg, rerr := render(msgNotHolding, struct{ Token string }{token})
		if rerr != nil {
			return "", rerr
		}
		return "", NewUserError(msg)
	}
	if err != nil {
		return "", err
	}

	h.publish(ctx, game.Event{Type: game.EventDropped, User: p.Id, Room: p.Location, Item: it.ID})
	return render(msgDropped, itemRef(it))
}
