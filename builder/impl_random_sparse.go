// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and Vertices(n) constructors.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i); fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodVertices          = "Vertices"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		b.EnsureVertices(n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				take := p == probMax
				if !take && p > probMin {
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := cfg.link(b, i, j); err != nil {
					return fmt.Errorf("%s: link(%d,%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}

// Vertices returns a Constructor that grows the vertex set to at least n;
// the additional vertices are isolated.
func Vertices(n int) Constructor {
	return func(b *topology.Builder, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodVertices, n, ErrTooFewVertices)
		}
		b.EnsureVertices(n)

		return nil
	}
}
