// SPDX-License-Identifier: MIT
// Package: subiso
//
// Package subiso enumerates subgraph isomorphisms: every injective mapping
// of a small pattern graph into a target graph that preserves adjacency,
// vertex attributes and degree feasibility.
//
// What:
//   - Match(ctx, pattern, target, opts...) runs a parallel backtracking
//     search and returns a Table with one row per embedding and one column
//     per pattern vertex (column j holds the target vertex matched to
//     pattern vertex j).
//   - Two kinds: Induced (pattern non-edges must map to target non-edges)
//     and NonInduced (pattern non-edges impose nothing).
//   - Two target encodings: dense bit rows or sorted adjacency lists,
//     chosen by density unless forced through Options.Representation.
//
// How:
//   - Pattern vertices are processed in a fixed order (Order) with one
//     Condition per depth listing which already placed vertices must be
//     non-adjacent and which must be adjacent to the next one.
//   - Each engine owns a depth-indexed stack of candidate queues. The
//     candidates for depth L+1 are the intersection of the neighborhoods
//     required adjacent, minus the union of neighborhoods required
//     non-adjacent, minus the vertices already used.
//   - Engines share one global stack. A busy engine donates one queued
//     candidate (with its prefix path) whenever idle engines outnumber the
//     stored records; an engine that runs dry steals from it and blocks
//     until work arrives or every engine is idle.
//
// Determinism:
//   - Without a cap (MaxMatchCount == 0) the set of rows is deterministic.
//     With a cap, which rows make up the returned prefix depends on
//     goroutine scheduling; only the row count is fixed.
//   - Row order is never deterministic. Sort rows when a stable order
//     matters.
//
// Cancellation:
//   - MaxMatchCount > 0 stops the search once that many rows were found
//     (Result.Truncated reports it). The table never exceeds the cap.
//   - A cancelled context stops every engine at its next step; Match
//     returns the rows found so far together with the context error.
//
// Complexity:
//   - Exponential in the pattern size in the worst case. One exploration
//     step costs O(k·n/64) on bit targets and O(Σ deg) on list targets,
//     for k constrained predecessors.
package subiso
