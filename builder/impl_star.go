// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_star.go — implementation of Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; center 0, leaves 1..n-1, spokes emitted by leaf id.
//   • Wheel: n ≥ 4; rim cycle C_{n-1} over 0..n-2, hub n-1, spokes by rim id.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // the rim cycle has n-1 ≥ 3 vertices
	starCenter    = 0
)

// Star returns a Constructor that builds the star K_{1,n-1} centered at 0.
func Star(n int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b.EnsureVertices(n)
		for leaf := 1; leaf < n; leaf++ {
			if err := cfg.link(b, starCenter, leaf); err != nil {
				return fmt.Errorf("%s: link(%d,%d): %w", methodStar, starCenter, leaf, err)
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(b *topology.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		b.EnsureVertices(n)
		hub := n - 1
		for rim := 0; rim < hub; rim++ {
			if err := cfg.link(b, hub, rim); err != nil {
				return fmt.Errorf("%s: link(%d,%d): %w", methodWheel, hub, rim, err)
			}
		}

		return nil
	}
}
