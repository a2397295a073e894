package infiltration

import "errors"

var (
	// ErrBadInput indicates a negative or non-finite air-change rate or
	// flow coefficient.
	ErrBadInput = errors.New("infiltration: invalid input")

	// ErrBadVolume indicates a non-positive or non-finite volume.
	ErrBadVolume = errors.New("infiltration: volume must be > 0")

	// ErrBadOptions indicates Options violating their documented ranges.
	ErrBadOptions = errors.New("infiltration: invalid options")
)
