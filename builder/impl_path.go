// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_path.go — implementation of Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, edges {i,i+1} for i in 0..n-2.
//   • Cycle: n ≥ 3, Path(n) edges plus the closing edge {n-1,0}.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, b, cfg, n)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := chain(methodCycle, b, cfg, n); err != nil {
			return err
		}
		if err := cfg.link(b, n-1, 0); err != nil {
			return fmt.Errorf("%s: closing link(%d,0): %w", methodCycle, n-1, err)
		}

		return nil
	}
}

// chain links 0-1-…-(n-1).
func chain(method string, b *topology.Builder, cfg builderConfig, n int) error {
	b.EnsureVertices(n)
	for i := 0; i+1 < n; i++ {
		if err := cfg.link(b, i, i+1); err != nil {
			return fmt.Errorf("%s: link(%d,%d): %w", method, i, i+1, err)
		}
	}

	return nil
}
