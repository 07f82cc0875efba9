// SPDX-License-Identifier: MIT
// Package: subiso/topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Call sites attach context with fmt.Errorf("<Method>: ...: %w", ErrX).

package topology

import "errors"

var (
	// ErrNegativeVertexCount indicates a builder or document declared n < 0.
	ErrNegativeVertexCount = errors.New("topology: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("topology: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("topology: self-loop not allowed")

	// ErrAttributeLength indicates an attribute slice of the wrong length.
	ErrAttributeLength = errors.New("topology: attribute length mismatch")

	// ErrMalformedEdge indicates a decoded edge that is not a [u, v] pair.
	ErrMalformedEdge = errors.New("topology: malformed edge")

	// ErrInvalidTopology indicates a CSR invariant violation found by Validate.
	ErrInvalidTopology = errors.New("topology: invalid topology")
)
