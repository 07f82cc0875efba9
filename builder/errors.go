// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// errors.go — sentinels returned by constructors.
//
// Constructors wrap one of these with the method name and offending
// parameters, e.g. "Cycle: n=2 < min=3: builder: parameter too small".
// Branch with errors.Is. Option constructors (WithX) panic instead.

package builder

import "errors"

var (
	// ErrTooFewVertices reports a size argument (n, rows, cols, a, c) below
	// the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability reports an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource reports RandomSparse with 0<p<1 and no WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed reports a nil Constructor passed to BuildTopology.
	ErrConstructFailed = errors.New("builder: construction failed")
)
