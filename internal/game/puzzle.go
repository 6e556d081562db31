package game

import (
	"fmt"
	"slices"
)

// Phase is one value of a puzzle variable.
type Phase string

// Puzzle is a one-directional state machine. Phases are listed in the only
// order a player can move through them.
type Puzzle struct {
	Name   string
	Phases []Phase
}

const (
	PhaseWithCard       Phase = "with-card"
	PhaseCardDiscovered Phase = "card-discovered"
	PhaseCardTaken      Phase = "card-taken"

	PhaseMissingKey Phase = "missing-key"
	PhaseFixed      Phase = "fixed"
	PhaseOpen       Phase = "open"

	PhaseLocked   Phase = "locked"
	PhaseUnlocked Phase = "unlocked"

	PhaseHasDrink    Phase = "has-drink"
	PhaseDrinkServed Phase = "drink-served"
	PhaseDrinkTaken  Phase = "drink-taken"

	PhaseUndiscovered Phase = "undiscovered"
	PhaseInvestigated Phase = "investigated"
)

var (
	FishTank   = Puzzle{Name: "fish-tank", Phases: []Phase{PhaseWithCard, PhaseCardDiscovered, PhaseCardTaken}}
	Piano      = Puzzle{Name: "piano", Phases: []Phase{PhaseMissingKey, PhaseFixed, PhaseOpen}}
	ClosetDoor = Puzzle{Name: "closet-door", Phases: []Phase{PhaseLocked, PhaseUnlocked}}
	Starbucks  = Puzzle{Name: "starbucks", Phases: []Phase{PhaseHasDrink, PhaseDrinkServed, PhaseDrinkTaken}}
	Drink      = Puzzle{Name: "drink", Phases: []Phase{PhaseUndiscovered, PhaseInvestigated}}

	Puzzles = []Puzzle{FishTank, Piano, ClosetDoor, Starbucks, Drink}
)

// NotSpilled is the spill location before the drink has been spilled.
const NotSpilled = "not-spilled"

func (p Puzzle) index(ph Phase) int {
	return slices.Index(p.Phases, ph)
}

// PuzzleState holds one player's puzzle variables.
type PuzzleState struct {
	phases        map[string]Phase
	spillLocation string
}

// NewPuzzleState returns the state every new player starts with.
func NewPuzzleState() *PuzzleState {
	s := &PuzzleState{
		phases:        make(map[string]Phase, len(Puzzles)),
		spillLocation: NotSpilled,
	}
	for _, p := range Puzzles {
		s.phases[p.Name] = p.Phases[0]
	}
	return s
}

// Phase returns the current phase of p.
func (s *PuzzleState) Phase(p Puzzle) Phase {
	if ph, ok := s.phases[p.Name]; ok {
		return ph
	}
	return p.Phases[0]
}

// Is reports whether p is currently in any of the given phases.
func (s *PuzzleState) Is(p Puzzle, phases ...Phase) bool {
	return slices.Contains(phases, s.Phase(p))
}

// Advance moves p forward to the given phase. Moving to the current phase or
// to any earlier one is refused.
func (s *PuzzleState) Advance(p Puzzle, to Phase) error {
	next := p.index(to)
	if next < 0 {
		return fmt.Errorf("%w: %s %s", ErrUnknownPhase, p.Name, to)
	}

	cur := p.index(s.Phase(p))
	if next <= cur {
		return fmt.Errorf("%w: %s %s -> %s", ErrIrreversible, p.Name, s.Phase(p), to)
	}

	s.phases[p.Name] = to
	return nil
}

// Spill records where the drink was spilled. It can only happen once.
func (s *PuzzleState) Spill(room string) error {
	if s.Spilled() {
		return fmt.Errorf("%w: drink already spilled in %s", ErrIrreversible, s.spillLocation)
	}
	s.spillLocation = room
	return nil
}

// Spilled reports whether the drink has been spilled.
func (s *PuzzleState) Spilled() bool {
	return s.spillLocation != NotSpilled
}

// SpillLocation returns the spill room, or NotSpilled.
func (s *PuzzleState) SpillLocation() string {
	return s.spillLocation
}

// UnlockRoom returns the room where prize items of the given depth appear.
func (s *PuzzleState) UnlockRoom(depth int) (string, bool) {
	switch depth {
	case 0:
		return "hallway", true
	case 1:
		return "closet", true
	case 2:
		if s.Spilled() {
			return s.spillLocation, true
		}
	}
	return "", false
}

// gate hides an item from room listings while its puzzle is in one of the
// listed phases.
type gate struct {
	item   string
	puzzle Puzzle
	hidden []Phase
}

var itemGates = []gate{
	{item: "i-card", puzzle: FishTank, hidden: []Phase{PhaseWithCard, PhaseCardTaken}},
	{item: "drink-voucher", puzzle: Piano, hidden: []Phase{PhaseMissingKey, PhaseFixed}},
	{item: "peppermint-mocha", puzzle: Starbucks, hidden: []Phase{PhaseHasDrink}},
}

// Hides reports whether the puzzle state currently hides the named item.
func (s *PuzzleState) Hides(itemName string) bool {
	for _, g := range itemGates {
		if g.item == itemName && s.Is(g.puzzle, g.hidden...) {
			return true
		}
	}
	return false
}
