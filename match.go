// SPDX-License-Identifier: MIT
// Package: subiso
//
// match.go — public entry points.

package subiso

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/subiso/topology"
)

// Match finds embeddings of pattern into target. See Options for knobs and
// the package doc for semantics.
//
// Returns:
//   - Result with the rows found; an empty Table (not an error) when there
//     is none, including when pattern has more vertices than target.
//   - ErrNilGraph, ErrInvalidOrdering and topology validation errors for
//     bad input; the wrapped context error, together with the partial
//     Result, when ctx is cancelled mid-search.
//
// A panic inside a worker stops all workers and is re-raised here.
func Match(ctx context.Context, pattern, target *topology.Topology, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Run(ctx, pattern, target, o)
}

// Run is Match with a fully assembled Options value, validated here.
func Run(ctx context.Context, pattern, target *topology.Topology, o Options) (Result, error) {
	const method = "Match"
	if pattern == nil || target == nil {
		return Result{}, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if err := o.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", method, err)
	}
	if err := pattern.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: pattern: %w", method, err)
	}
	if err := target.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: target: %w", method, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	var ord Ordering
	if o.Ordering != nil {
		if err := o.Ordering.Validate(pattern); err != nil {
			return Result{}, fmt.Errorf("%s: %w", method, err)
		}
		ord = o.Ordering.clone()
	} else {
		ord = Order(pattern, target)
	}

	if pattern.VertexCount == 0 || pattern.VertexCount > target.VertexCount {
		return Result{}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", method, err)
	}

	pg, err := NewGraph(pattern, ListRepresentation)
	if err != nil {
		return Result{}, fmt.Errorf("%s: pattern: %w", method, err)
	}
	tg, err := NewGraph(target, o.Representation)
	if err != nil {
		return Result{}, fmt.Errorf("%s: target: %w", method, err)
	}

	res, err := newBundle(pg, tg, ord, o).run(ctx)
	if err != nil {
		return res, fmt.Errorf("%s: %w", method, err)
	}

	return res, nil
}
