// Package builder provides deterministic topology fixtures for subgraph
// matching: classic graph families assembled through one orchestrator,
// BuildTopology, with functional options for seeding and labeling.
//
// Components:
//
//   - Orchestrator:
//     – BuildTopology(bopts, cons...) resolves options once, applies every
//     Constructor in order onto one topology.Builder, then labels vertices.
//   - Constructors (vertex ids are dense indices, documented per family):
//     – Complete(n)             K_n over 0..n-1.
//     – Path(n)                 0-1-…-(n-1).
//     – Cycle(n)                Path(n) plus (n-1)-0.
//     – Star(n)                 center 0, leaves 1..n-1.
//     – Wheel(n)                rim cycle 0..n-2, hub n-1.
//     – CompleteBipartite(a,b)  left 0..a-1, right a..a+b-1.
//     – Grid(r,c)               4-neighborhood, id = row*c + col.
//     – RandomSparse(n,p)       G(n,p), RNG required for 0<p<1.
//     – Vertices(n)             ensure at least n vertices (isolated extras).
//   - Options:
//     – WithSeed / WithRand       RNG for stochastic constructors.
//     – WithAttributeFn(fn)       vertex label = fn(v).
//     – WithEdgeLabelFn(fn)       edge label = fn(u,v) with u<v.
//
// Constructors sharing indices compose by union: Complete(4) followed by
// Vertices(5) yields K_4 plus one isolated vertex.
//
// Guarantees:
//   - Deterministic: same options, seed and constructor order ⇒ identical topology.
//   - Constructors never panic; they return sentinel errors (errors.go).
//   - Option constructors panic on meaningless input (nil functions/RNG).
package builder
