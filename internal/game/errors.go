package game

import "errors"

var (
	// ErrWrongState is returned when an operation is not valid in the
	// session's current phase.
	ErrWrongState = errors.New("game: operation not allowed in current phase")

	// ErrUnknownSprite is returned for an unrecognized character name or ID.
	ErrUnknownSprite = errors.New("game: unknown sprite")
)
