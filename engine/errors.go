package engine

import "errors"

var (
	// ErrNotResting is returned by Lock when the active piece can still fall.
	ErrNotResting = errors.New("piece is not resting")
	// ErrEmptyBag means a bag was drawn from after it ran out without being refilled.
	ErrEmptyBag = errors.New("bag is empty")
	// ErrInvalidDirection is returned for direction values outside the four facings.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrNoActivePiece is returned by Lock and HardDrop before anything was spawned.
	ErrNoActivePiece = errors.New("no active piece")
)
