package game

import "errors"

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerAway        = errors.New("player is away")
	ErrItemNotFound      = errors.New("item not found")
	ErrItemNotRecognized = errors.New("item not recognized")
	ErrNoEntrance        = errors.New("no entrance for arrival direction")
	ErrIrreversible      = errors.New("puzzle transitions are one-directional")
	ErrUnknownPhase      = errors.New("unknown puzzle phase")
	ErrCustody           = errors.New("item held in more than one bucket")
)
