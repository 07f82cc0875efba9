// SPDX-License-Identifier: MIT
// Package: subiso
//
// sorter.go — pattern vertex ordering and per-depth consistency conditions.
//
// Heuristic (greedy, deterministic):
//   - prob(p) = fraction of target vertices with attribute(p) and degree ≥ deg(p).
//   - First vertex: minimum prob; ties by higher degree, then lower id.
//   - Next vertex: maximum edges into the ordered prefix; ties by lower prob,
//     then higher degree, then lower id. Connected patterns thus grow along
//     edges; a new component starts only when the current one is exhausted.
//
// Conditions:
//   - Conditions[i].Array lists every depth j < i: first the depths whose
//     pattern vertex is NOT adjacent to Sorted[i], then those that are.
//     Divider is the number of non-adjacent entries.

package subiso

import (
	"fmt"

	"github.com/katalvlaran/subiso/topology"
)

// Condition constrains depth i against the already placed depths.
// Array[:Divider] must be non-adjacent, Array[Divider:] adjacent.
type Condition struct {
	Array   []int
	Divider int
}

// Adjacent returns the depths that must be adjacent.
func (c Condition) Adjacent() []int { return c.Array[c.Divider:] }

// NonAdjacent returns the depths that must not be adjacent.
func (c Condition) NonAdjacent() []int { return c.Array[:c.Divider] }

// Ordering is the processing order of pattern vertices plus one Condition
// per depth.
type Ordering struct {
	Sorted     []int
	Conditions []Condition
}

func (o Ordering) clone() Ordering {
	out := Ordering{
		Sorted:     append([]int(nil), o.Sorted...),
		Conditions: make([]Condition, len(o.Conditions)),
	}
	for i, c := range o.Conditions {
		out.Conditions[i] = Condition{Array: append([]int(nil), c.Array...), Divider: c.Divider}
	}

	return out
}

// Order computes the default Ordering of pattern against target.
// A nil topology yields an empty Ordering.
//
// Complexity: O(P² + P·T) for P pattern and T target vertices.
func Order(pattern, target *topology.Topology) Ordering {
	if pattern == nil || target == nil || pattern.VertexCount == 0 {
		return Ordering{}
	}
	prob := matchProbabilities(pattern, target)
	sorted := greedyOrder(pattern, prob)

	return Ordering{Sorted: sorted, Conditions: conditionsFor(pattern, sorted)}
}

// matchProbabilities estimates, per pattern vertex, the share of target
// vertices it could be mapped to.
func matchProbabilities(pattern, target *topology.Topology) []float64 {
	prob := make([]float64, pattern.VertexCount)
	if target.VertexCount == 0 {
		return prob
	}
	for p := range prob {
		var hits int
		for v := 0; v < target.VertexCount; v++ {
			if target.Attribute(v) == pattern.Attribute(p) && target.Degree(v) >= pattern.Degree(p) {
				hits++
			}
		}
		prob[p] = float64(hits) / float64(target.VertexCount)
	}

	return prob
}

func greedyOrder(pattern *topology.Topology, prob []float64) []int {
	n := pattern.VertexCount
	placed := make([]bool, n)
	links := make([]int, n) // edges from p into the placed prefix
	sorted := make([]int, 0, n)

	for len(sorted) < n {
		best := -1
		for p := 0; p < n; p++ {
			if placed[p] {
				continue
			}
			if best < 0 || better(p, best, links, prob, pattern) {
				best = p
			}
		}
		placed[best] = true
		sorted = append(sorted, best)
		for _, q := range pattern.Row(best) {
			links[q]++
		}
	}

	return sorted
}

// better reports whether p should be placed before q.
func better(p, q int, links []int, prob []float64, pattern *topology.Topology) bool {
	if links[p] != links[q] {
		return links[p] > links[q]
	}
	if prob[p] != prob[q] {
		return prob[p] < prob[q]
	}
	if dp, dq := pattern.Degree(p), pattern.Degree(q); dp != dq {
		return dp > dq
	}

	return p < q
}

func conditionsFor(pattern *topology.Topology, sorted []int) []Condition {
	conds := make([]Condition, len(sorted))
	for i, p := range sorted {
		arr := make([]int, 0, i)
		for j := 0; j < i; j++ {
			if !pattern.HasEdge(sorted[j], p) {
				arr = append(arr, j)
			}
		}
		divider := len(arr)
		for j := 0; j < i; j++ {
			if pattern.HasEdge(sorted[j], p) {
				arr = append(arr, j)
			}
		}
		conds[i] = Condition{Array: arr, Divider: divider}
	}

	return conds
}

// Validate checks that o is usable for pattern: Sorted is a permutation of
// the pattern vertices, and Conditions[i] lists each depth j < i exactly
// once, partitioned by the real pattern adjacency.
//
// Errors: ErrNilGraph, ErrInvalidOrdering.
func (o Ordering) Validate(pattern *topology.Topology) error {
	const method = "Ordering.Validate"
	if pattern == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	n := pattern.VertexCount
	if len(o.Sorted) != n || len(o.Conditions) != n {
		return fmt.Errorf("%s: sorted=%d conditions=%d for n=%d: %w",
			method, len(o.Sorted), len(o.Conditions), n, ErrInvalidOrdering)
	}
	seen := make([]bool, n)
	for i, p := range o.Sorted {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%s: sorted[%d]=%d: %w", method, i, p, ErrInvalidOrdering)
		}
		seen[p] = true
	}

	depthSeen := make([]int, n) // stamp i+1 when depth listed for level i
	for i, c := range o.Conditions {
		if len(c.Array) != i || c.Divider < 0 || c.Divider > len(c.Array) {
			return fmt.Errorf("%s: condition %d: len=%d divider=%d: %w",
				method, i, len(c.Array), c.Divider, ErrInvalidOrdering)
		}
		for k, j := range c.Array {
			if j < 0 || j >= i || depthSeen[j] == i+1 {
				return fmt.Errorf("%s: condition %d entry %d=%d: %w", method, i, k, j, ErrInvalidOrdering)
			}
			depthSeen[j] = i + 1
			wantAdjacent := k >= c.Divider
			if pattern.HasEdge(o.Sorted[j], o.Sorted[i]) != wantAdjacent {
				return fmt.Errorf("%s: condition %d: depth %d adjacency mismatch: %w",
					method, i, j, ErrInvalidOrdering)
			}
		}
	}

	return nil
}
