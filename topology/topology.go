// SPDX-License-Identifier: MIT
// Package: subiso/topology
//
// topology.go — the immutable CSR Topology and its read-only queries.
//
// Policy:
//   - A Topology is never mutated after Build/Decode returns it.
//   - All queries are O(1) or O(log d) and safe for concurrent readers.

package topology

import (
	"fmt"
	"sort"
)

// Topology is a simple undirected graph in CSR form. See the package doc
// for field semantics. Construct it through Builder, FromEdges, FromGonum
// or Decode so the invariants checked by Validate hold.
type Topology struct {
	VertexCount    int
	Degrees        []int
	Offsets        []int
	Neighbors      []int
	Attributes     []int
	EdgeAttributes []int
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (t *Topology) EdgeCount() int { return len(t.Neighbors) / 2 }

// Degree returns the number of neighbors of v.
func (t *Topology) Degree(v int) int { return t.Degrees[v] }

// Row returns the sorted neighbor ids of v. The slice aliases internal
// storage and must not be modified.
func (t *Topology) Row(v int) []int { return t.Neighbors[t.Offsets[v]:t.Offsets[v+1]] }

// Attribute returns the label of v, 0 when the topology carries none.
func (t *Topology) Attribute(v int) int {
	if t.Attributes == nil {
		return 0
	}

	return t.Attributes[v]
}

// HasVertexAttributes reports whether per-vertex labels were supplied.
func (t *Topology) HasVertexAttributes() bool { return t.Attributes != nil }

// HasEdgeAttributes reports whether per-edge labels were supplied.
func (t *Topology) HasEdgeAttributes() bool { return t.EdgeAttributes != nil }

// HasEdge reports whether {u,v} is an edge.
// Complexity: O(log deg(u)).
func (t *Topology) HasEdge(u, v int) bool {
	_, ok := t.find(u, v)

	return ok
}

// EdgeAttribute returns the label of edge {u,v} and whether the edge exists.
// The label is 0 when the topology carries no edge attributes.
func (t *Topology) EdgeAttribute(u, v int) (int, bool) {
	pos, ok := t.find(u, v)
	if !ok {
		return 0, false
	}
	if t.EdgeAttributes == nil {
		return 0, true
	}

	return t.EdgeAttributes[pos], true
}

// MaxDegree returns the largest vertex degree (0 for an empty graph).
func (t *Topology) MaxDegree() int {
	var m int
	for _, d := range t.Degrees {
		if d > m {
			m = d
		}
	}

	return m
}

// AverageDegree returns 2E/n, or 0 for an empty graph.
func (t *Topology) AverageDegree() float64 {
	if t.VertexCount == 0 {
		return 0
	}

	return float64(len(t.Neighbors)) / float64(t.VertexCount)
}

// Density returns 2E / (n(n-1)), or 0 when n < 2.
func (t *Topology) Density() float64 {
	n := t.VertexCount
	if n < 2 {
		return 0
	}

	return float64(len(t.Neighbors)) / (float64(n) * float64(n-1))
}

// Edges returns every undirected edge once as [u, v] with u < v, in row order.
func (t *Topology) Edges() [][2]int {
	out := make([][2]int, 0, t.EdgeCount())
	for u := 0; u < t.VertexCount; u++ {
		for _, v := range t.Row(u) {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// find returns the CSR position of v inside row(u).
func (t *Topology) find(u, v int) (int, bool) {
	row := t.Row(u)
	i := sort.SearchInts(row, v)
	if i < len(row) && row[i] == v {
		return t.Offsets[u] + i, true
	}

	return 0, false
}

// Validate checks every CSR invariant: lengths, monotone offsets, sorted
// duplicate-free rows, no self-loops, symmetry and attribute agreement.
//
// Errors: ErrInvalidTopology, ErrVertexOutOfRange, ErrSelfLoop,
// ErrAttributeLength, wrapped with the offending position.
//
// Complexity: O(V + E log d).
func (t *Topology) Validate() error {
	const method = "Validate"
	n := t.VertexCount
	if n < 0 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrNegativeVertexCount)
	}
	if len(t.Degrees) != n || len(t.Offsets) != n+1 {
		return fmt.Errorf("%s: degrees=%d offsets=%d for n=%d: %w",
			method, len(t.Degrees), len(t.Offsets), n, ErrInvalidTopology)
	}
	if t.Offsets[0] != 0 || t.Offsets[n] != len(t.Neighbors) {
		return fmt.Errorf("%s: offsets do not span neighbors: %w", method, ErrInvalidTopology)
	}
	if t.Attributes != nil && len(t.Attributes) != n {
		return fmt.Errorf("%s: attributes=%d for n=%d: %w", method, len(t.Attributes), n, ErrAttributeLength)
	}
	if t.EdgeAttributes != nil && len(t.EdgeAttributes) != len(t.Neighbors) {
		return fmt.Errorf("%s: edge attributes=%d for %d entries: %w",
			method, len(t.EdgeAttributes), len(t.Neighbors), ErrAttributeLength)
	}

	for u := 0; u < n; u++ {
		if t.Offsets[u+1]-t.Offsets[u] != t.Degrees[u] {
			return fmt.Errorf("%s: degree of %d disagrees with offsets: %w", method, u, ErrInvalidTopology)
		}
		row := t.Row(u)
		for i, v := range row {
			if v < 0 || v >= n {
				return fmt.Errorf("%s: neighbor %d of %d: %w", method, v, u, ErrVertexOutOfRange)
			}
			if v == u {
				return fmt.Errorf("%s: vertex %d: %w", method, u, ErrSelfLoop)
			}
			if i > 0 && row[i-1] >= v {
				return fmt.Errorf("%s: row %d not strictly ascending: %w", method, u, ErrInvalidTopology)
			}
			back, ok := t.find(v, u)
			if !ok {
				return fmt.Errorf("%s: edge %d-%d not mirrored: %w", method, u, v, ErrInvalidTopology)
			}
			if t.EdgeAttributes != nil && t.EdgeAttributes[back] != t.EdgeAttributes[t.Offsets[u]+i] {
				return fmt.Errorf("%s: edge %d-%d labels differ per direction: %w", method, u, v, ErrInvalidTopology)
			}
		}
	}

	return nil
}
