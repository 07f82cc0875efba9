// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng         = nil   (pure/deterministic unless seeded)
//   • attrFn      = nil   (no vertex labels emitted)
//   • edgeLabelFn = nil   (no edge labels emitted)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/subiso/topology"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Vertex label strategy: index -> label.
	attrFn func(v int) int
	// Edge label strategy: (u,v) with u<v -> label.
	edgeLabelFn func(u, v int) int
}

// newBuilderConfig applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// link adds {u,v} to b, labeled through cfg.edgeLabelFn when configured.
// Endpoints are normalized so the label function always sees u < v.
func (cfg builderConfig) link(b *topology.Builder, u, v int) error {
	if cfg.edgeLabelFn == nil {
		return b.AddEdge(u, v)
	}
	if u > v {
		u, v = v, u
	}

	return b.AddLabeledEdge(u, v, cfg.edgeLabelFn(u, v))
}
