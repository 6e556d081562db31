package commands

import (
	"context"

	"github.com/pixil98/union-domain/internal/game"
)

// rule is one entry of the fixed command table. It matches when the command
// is exactly one of its patterns, the player is in room (if set) and when (if
// set) agrees.
type rule struct {
	patterns [][]string
	room     string
	when     func(p *game.PlayerState) bool
	run      CommandFunc
}

func (r rule) matches(cmdCtx *CommandContext) bool {
	if r.room != "" && cmdCtx.Player.Location != r.room {
		return false
	}
	if r.when != nil && !r.when(cmdCtx.Player) {
		return false
	}
	for _, pat := range r.patterns {
		if cmdCtx.Command.Is(pat...) {
			return true
		}
	}
	return false
}

func reply(text string) CommandFunc {
	return func(context.Context, *CommandContext) (string, error) {
		return text, nil
	}
}

// fixedRules lists the puzzle and scenery commands. They are checked in order
// before any general verb.
func (h *Handler) fixedRules() []rule {
	return []rule{
		{
			patterns: [][]string{{"look", "fishtank"}, {"look", "fish", "tank"}},
			room:     "lobby",
			run:      h.lookFishTank,
		},
		{
			patterns: [][]string{{"go", "fishing"}},
			room:     "lobby",
			run:      h.goFishing,
		},
		{
			patterns: [][]string{{"go", "east"}},
			room:     "lobby",
			run:      reply(msgHelpDesk),
		},
		{
			patterns: [][]string{{"use", "i-card", "closet"}},
			room:     "hallway",
			run:      h.unlockCloset,
		},
		{
			patterns: [][]string{{"go", "west"}},
			room:     "hallway",
			when: func(p *game.PlayerState) bool {
				return p.Puzzles.Is(game.ClosetDoor, game.PhaseLocked)
			},
			run: reply(msgClosetLocked),
		},
		{
			patterns: [][]string{{"play", "piano"}},
			room:     "lounge",
			run:      h.playPiano,
		},
		{
			patterns: [][]string{{"use", "piano-key", "piano"}},
			room:     "lounge",
			run:      h.fixPiano,
		},
		{
			patterns: [][]string{{"look", "piano"}, {"open", "piano"}},
			room:     "lounge",
			run:      h.openPiano,
		},
		{
			patterns: [][]string{
				{"give", "voucher"},
				{"give", "drink-voucher"},
				{"use", "voucher", "starbucks"},
				{"use", "drink-voucher", "starbucks"},
			},
			room: "starbucks",
			run:  h.orderDrink,
		},
		{
			patterns: [][]string{{"drink", "starbucks"}, {"drink", "peppermint-mocha"}},
			run:      h.drink,
		},
		{
			patterns: [][]string{{"go", "south"}},
			room:     "courtyard",
			run:      reply(msgStage),
		},
		{
			patterns: [][]string{{"sing"}},
			room:     "courtyard",
			run:      reply(msgHum),
		},
	}
}
