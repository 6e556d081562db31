package commands

import (
	"context"
	"errors"

	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/world"
)

// move follows one exit. Reaching the domain exit hands the player back to
// the hub without changing their location.
func (h *Handler) move(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	direction := cmdCtx.Command.Object()
	p := cmdCtx.Player

	dest, err := cmdCtx.World.Graph.Go(p.Location, direction)
	if errors.Is(err, world.ErrNoSuchEdge) {
		return "", NewUserError(msgNoExit)
	}
	if err != nil {
		return "", err
	}

	if dest == world.Exit {
		return render(msgJourney, struct{ Direction string }{direction})
	}

	p.Location = dest
	h.publish(ctx, game.Event{Type: game.EventMoved, User: p.Id, Room: dest})
	return h.describeRoom(cmdCtx)
}
