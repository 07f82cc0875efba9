// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_grid.go — CompleteBipartite(a,b) and Grid(rows,cols) constructors.
//
// Contract:
//   • CompleteBipartite: a,b ≥ 1; left 0..a-1, right a..a+b-1, all cross pairs.
//   • Grid: rows,cols ≥ 1; vertex id = r*cols + c; right and down neighbors.
//
// Complexity:
//   • CompleteBipartite: O(a·b).
//   • Grid: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	minPartitionSize        = 1
	minGridDim              = 1
)

// CompleteBipartite returns a Constructor that builds K_{a,b}.
func CompleteBipartite(a, c int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if a < minPartitionSize || c < minPartitionSize {
			return fmt.Errorf("%s: a=%d b=%d < min=%d: %w",
				methodCompleteBipartite, a, c, minPartitionSize, ErrTooFewVertices)
		}
		b.EnsureVertices(a + c)
		for i := 0; i < a; i++ {
			for j := a; j < a+c; j++ {
				if err := cfg.link(b, i, j); err != nil {
					return fmt.Errorf("%s: link(%d,%d): %w", methodCompleteBipartite, i, j, err)
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b.EnsureVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := cfg.link(b, v, v+1); err != nil {
						return fmt.Errorf("%s: link(%d,%d): %w", methodGrid, v, v+1, err)
					}
				}
				if r+1 < rows {
					if err := cfg.link(b, v, v+cols); err != nil {
						return fmt.Errorf("%s: link(%d,%d): %w", methodGrid, v, v+cols, err)
					}
				}
			}
		}

		return nil
	}
}
