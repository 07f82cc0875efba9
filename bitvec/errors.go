package bitvec

import "errors"

var (
	// ErrNegativeCapacity indicates New was asked for a capacity below zero.
	ErrNegativeCapacity = errors.New("bitvec: negative capacity")

	// ErrIndexOutOfRange indicates an id outside [0, capacity) in a constructor.
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
)
