package commands

import (
	"context"

	"github.com/pixil98/union-domain/internal/game"
)

func (h *Handler) lookFishTank(_ context.Context, cmdCtx *CommandContext) (string, error) {
	switch cmdCtx.Player.Puzzles.Phase(game.FishTank) {
	case game.PhaseCardDiscovered:
		return msgTankDiscovered, nil
	case game.PhaseCardTaken:
		return msgTankTaken, nil
	default:
		return msgTankWithCard, nil
	}
}

func (h *Handler) goFishing(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player
	if !p.Holds("rubber-gloves") {
		return msgFishingNoGloves, nil
	}

	switch p.Puzzles.Phase(game.FishTank) {
	case game.PhaseWithCard:
		h.advance(ctx, cmdCtx, game.FishTank, game.PhaseCardDiscovered)
		return msgFishingFound, nil
	case game.PhaseCardDiscovered:
		h.advance(ctx, cmdCtx, game.FishTank, game.PhaseCardTaken)
		return msgFishingAgain, nil
	default:
		return msgFishingDone, nil
	}
}

func (h *Handler) unlockCloset(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player
	if !p.Holds("i-card") {
		return msgClosetNoCard, nil
	}

	if p.Puzzles.Is(game.ClosetDoor, game.PhaseLocked) {
		h.advance(ctx, cmdCtx, game.ClosetDoor, game.PhaseUnlocked)
	}
	return msgClosetUnlocked, nil
}

func (h *Handler) playPiano(_ context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player
	if !p.Holds("sheet-music") {
		return msgPianoNoMusic, nil
	}

	switch p.Puzzles.Phase(game.Piano) {
	case game.PhaseMissingKey:
		return msgPianoMissingKey, nil
	case game.PhaseFixed:
		return msgPianoFixed, nil
	default:
		return msgPianoOpenPlay, nil
	}
}

func (h *Handler) fixPiano(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player
	if !p.Puzzles.Is(game.Piano, game.PhaseMissingKey) {
		return msgKeyPresent, nil
	}
	if !p.Holds("piano-key") {
		return msgKeyMissing, nil
	}

	h.advance(ctx, cmdCtx, game.Piano, game.PhaseFixed)
	return msgKeyInserted, nil
}

func (h *Handler) openPiano(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player

	switch p.Puzzles.Phase(game.Piano) {
	case game.PhaseMissingKey:
		return msgPianoTooEarly, nil
	case game.PhaseFixed:
		h.advance(ctx, cmdCtx, game.Piano, game.PhaseOpen)
		return msgPianoOpened, nil
	}

	for _, s := range p.VisibleItems(cmdCtx.World) {
		if s.Item.Name == "drink-voucher" {
			return msgPianoVoucher, nil
		}
	}
	return msgPianoEmpty, nil
}

// voucherNames are the names the barista accepts.
var voucherNames = []string{"drink-voucher", "voucher"}

func (h *Handler) orderDrink(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player

	switch p.Puzzles.Phase(game.Starbucks) {
	case game.PhaseHasDrink:
		for _, name := range voucherNames {
			if !p.Holds(name) {
				continue
			}
			if _, err := p.Consume(name); err != nil {
				return "", err
			}
			h.advance(ctx, cmdCtx, game.Starbucks, game.PhaseDrinkServed)
			return msgDrinkServed, nil
		}
		return msgNoVoucher, nil
	case game.PhaseDrinkServed:
		h.advance(ctx, cmdCtx, game.Starbucks, game.PhaseDrinkTaken)
		return msgDrinkWaiting, nil
	default:
		return msgDrinkCollected, nil
	}
}

func (h *Handler) drink(ctx context.Context, cmdCtx *CommandContext) (string, error) {
	p := cmdCtx.Player
	if !p.Holds("peppermint-mocha") {
		return msgDrinkMissing, nil
	}
	if p.Puzzles.Spilled() {
		return msgDrinkEmpty, nil
	}

	if err := p.Puzzles.Spill(p.Location); err != nil {
		return "", err
	}
	h.advance(ctx, cmdCtx, game.Drink, game.PhaseInvestigated)
	return msgDrinkSpilled, nil
}
