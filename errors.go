// SPDX-License-Identifier: MIT
// Package: subiso
//
// errors.go — sentinel errors for the subiso package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Context is attached with %w: fmt.Errorf("%s: ...: %w", method, ErrX).
//   - Invalid input never panics Match; broken internal invariants do.

package subiso

import "errors"

// ErrNilGraph indicates a nil pattern or target topology.
var ErrNilGraph = errors.New("subiso: graph is nil")

// ErrInvalidOrdering indicates a caller-supplied Ordering that is not a
// permutation of the pattern vertices or whose conditions disagree with
// the pattern adjacency.
var ErrInvalidOrdering = errors.New("subiso: invalid ordering")

// ErrUnknownKind indicates an isomorphism kind outside {Induced, NonInduced}.
var ErrUnknownKind = errors.New("subiso: unknown isomorphism kind")

// ErrUnknownRepresentation indicates a representation outside
// {AutoRepresentation, BitRepresentation, ListRepresentation}.
var ErrUnknownRepresentation = errors.New("subiso: unknown representation")

// ErrNegativeMatchCount indicates MaxMatchCount < 0.
var ErrNegativeMatchCount = errors.New("subiso: negative max match count")

// ErrNegativeWorkers indicates Workers < 0.
var ErrNegativeWorkers = errors.New("subiso: negative worker count")
