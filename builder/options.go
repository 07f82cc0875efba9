// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAttributeFn labels every vertex v with fn(v) once all constructors ran.
// Panics on nil.
func WithAttributeFn(fn func(v int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributeFn(nil)")
	}

	return func(c *builderConfig) { c.attrFn = fn }
}

// WithEdgeLabelFn labels every emitted edge {u,v} (u<v) with fn(u,v).
// Panics on nil.
func WithEdgeLabelFn(fn func(u, v int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeLabelFn(nil)")
	}

	return func(c *builderConfig) { c.edgeLabelFn = fn }
}
