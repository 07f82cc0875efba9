// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices 0..n-1; every unordered pair {i,j}, i<j, emitted exactly once.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b.EnsureVertices(n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(b, i, j); err != nil {
					return fmt.Errorf("%s: link(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
