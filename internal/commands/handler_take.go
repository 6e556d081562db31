package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/world"
)

// completionScore is reported to the hub when the final prize is taken.
const completionScore = 1.0

// take picks up a visible item and tells the hub it is now in the player's
// inventory. The local move stands even if the hub call fails.
func (h *Handler) take(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	token := cmdCtx.Command.Object()
	if token == "" {
		return "", NewUserError(msgTakeWhat)
	}

	p := cmdCtx.Player
	it, from, err := p.Take(token, cmdCtx.World)
	if errors.Is(err, game.ErrItemNotFound) {
		msg, rerr := render(msgNothingThere, struct{ Token string }{token})
		if rerr != nil {
			return "", rerr
		}
		return "", NewUserError(msg)
	}
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "item taken", "user", p.Id, "item", it.Name, "id", it.ID, "from", from)
	h.publish(ctx, game.Event{Type: game.EventTaken, User: p.Id, Room: p.Location, Item: it.ID})

	if err := h.hub.Transfer(ctx, p.Id, it.ID, world.LocationInventory); err != nil {
		return "", fmt.Errorf("%w: transferring %s: %w", ErrHubCall, it.Name, err)
	}

	if !it.HasDepth(world.MaxDepth) || p.Scored {
		return render(msgTaken, itemRef(it))
	}

	// Only one score is ever sent, even if the call fails.
	p.Scored = true
	if err := h.hub.Score(ctx, p.Id, completionScore); err != nil {
		return "", fmt.Errorf("%w: scoring %s: %w", ErrHubCall, p.Id, err)
	}

	slog.InfoContext(ctx, "domain completed", "user", p.Id)
	h.publish(ctx, game.Event{Type: game.EventScored, User: p.Id, Room: p.Location, Item: it.ID})
	return render(msgFinished, itemRef(it))
}
