package game

import "errors"

var (
	// ErrInsufficientChips is returned when a player tries to commit more
	// chips than they hold.
	ErrInsufficientChips = errors.New("not enough chips")

	// ErrNegativeAmount is returned for negative chip movements.
	ErrNegativeAmount = errors.New("negative chip amount")

	// ErrTooFewPlayers is returned when blind positions cannot be formed.
	ErrTooFewPlayers = errors.New("too few players to continue the game")

	// ErrInvalidPositions is returned when the dealer and blind seats handed
	// to a hand do not describe a legal table.
	ErrInvalidPositions = errors.New("invalid table positions")

	// ErrNoContender is returned when a pot has nobody (or more than one
	// player) left to receive it.
	ErrNoContender = errors.New("no single player left to award the pot")

	// ErrChipConservation is returned when chips were created or destroyed
	// during a hand.
	ErrChipConservation = errors.New("chip conservation violation")
)
