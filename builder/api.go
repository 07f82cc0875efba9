// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildTopology(bopts, cons...). Creates the builder,
//     resolves cfg, runs cons in order, applies vertex labels, materializes CSR.
//   - Factories live in impl_*.go, one family per file.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical topology.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Grow the vertex set with EnsureVertices before linking.
//   - Emit edges in a stable, documented order.
type Constructor func(b *topology.Builder, cfg builderConfig) error

// BuildTopology resolves the builder configuration from bopts and applies
// all constructors in order onto a single topology.Builder. Any constructor
// error is wrapped with "BuildTopology: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus CSR build O(V + E log d).
func BuildTopology(bopts []BuilderOption, cons ...Constructor) (*topology.Topology, error) {
	cfg := newBuilderConfig(bopts...)
	b := topology.NewBuilder(0)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTopology: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildTopology: %w", err)
		}
	}

	if cfg.attrFn != nil {
		for v := 0; v < b.VertexCount(); v++ {
			if err := b.SetAttribute(v, cfg.attrFn(v)); err != nil {
				return nil, fmt.Errorf("BuildTopology: %w", err)
			}
		}
	}

	return b.Build()
}

// MustBuild is BuildTopology for fixtures known to be valid; it panics on error.
// Intended for tests and examples only.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *topology.Topology {
	t, err := BuildTopology(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return t
}
