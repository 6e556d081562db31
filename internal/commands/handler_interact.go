package commands

import (
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/world"
)

// Interactable is anything that answers custom verbs.
type Interactable interface {
	Matches(token string) bool
	Interact(verb string) (string, bool)
}

var _ Interactable = (*world.Item)(nil)

// interact looks for a held item, carried before owned, that declares the
// command's verb.
func interact(cmdCtx *CommandContext) (string, bool) {
	target := cmdCtx.Command.Object()
	if target == "" {
		return "", false
	}

	for _, b := range []game.Bucket{game.BucketCarried, game.BucketOwned} {
		for _, it := range cmdCtx.Player.Bucket(b).Items() {
			if text, ok := respond(it, target, cmdCtx.Command.Verb); ok {
				return text, true
			}
		}
	}
	return "", false
}

func respond(i Interactable, target, verb string) (string, bool) {
	if !i.Matches(target) {
		return "", false
	}
	return i.Interact(verb)
}
