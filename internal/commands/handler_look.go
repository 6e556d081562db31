package commands

import (
	"context"

	"github.com/pixil98/union-domain/internal/game"
)

// look describes the room, or an item in hand when given a target.
func (h *Handler) look(_ context.Context, cmdCtx *CommandContext) (string, error) {
	target := cmdCtx.Command.Object()
	if target == "" {
		return h.describeRoom(cmdCtx)
	}

	for _, b := range []game.Bucket{game.BucketOwned, game.BucketCarried} {
		if it := cmdCtx.Player.Bucket(b).Find(target); it != nil {
			return it.Description, nil
		}
	}
	return MsgUnhandled, nil
}
