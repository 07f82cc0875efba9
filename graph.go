// SPDX-License-Identifier: MIT
// Package: subiso
//
// graph.go — read-only Graph view over a topology.Topology.
//
// Contract:
//   - NewGraph never copies neighbor rows; bit rows are built once.
//   - A Graph is immutable and safe for concurrent readers.
//   - Exactly one representation is active; the engine dispatches on it
//     once per search, never per step.

package subiso

import (
	"fmt"

	"github.com/katalvlaran/subiso/bitvec"
	"github.com/katalvlaran/subiso/topology"
)

const (
	// bitsPerListEntry: a list row is cheaper than a bit row while
	// deg·64 < n.
	bitsPerListEntry = 64
	// maxBitMatrixBytes bounds the n·ceil(n/8) bytes of a bit matrix.
	maxBitMatrixBytes = 256 << 20
)

// Graph is the search-time view of one topology.
type Graph struct {
	topo      *topology.Topology
	rep       Representation
	rows      []*bitvec.BitVector // bit mode only
	maxDegree int
}

// NewGraph wraps t in the requested representation. AutoRepresentation is
// resolved here by density.
//
// Errors: ErrNilGraph, ErrUnknownRepresentation, topology.ErrNegativeVertexCount.
//
// Complexity: O(V + E) for lists, O(V·V/8 + E) for bit rows.
func NewGraph(t *topology.Topology, rep Representation) (*Graph, error) {
	const method = "NewGraph"
	if t == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if !rep.valid() {
		return nil, fmt.Errorf("%s: %v: %w", method, rep, ErrUnknownRepresentation)
	}
	if t.VertexCount < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, t.VertexCount, topology.ErrNegativeVertexCount)
	}
	if rep == AutoRepresentation {
		rep = chooseRepresentation(t)
	}

	g := &Graph{topo: t, rep: rep, maxDegree: t.MaxDegree()}
	if rep == BitRepresentation {
		n := t.VertexCount
		g.rows = make([]*bitvec.BitVector, n)
		for u := 0; u < n; u++ {
			row := bitvec.MustNew(n)
			for _, v := range t.Row(u) {
				row.Set(v)
			}
			g.rows[u] = row
		}
	}

	return g, nil
}

// chooseRepresentation prefers bit rows when the average row would hold
// at least one set bit per 64 positions and the matrix stays bounded.
func chooseRepresentation(t *topology.Topology) Representation {
	n := t.VertexCount
	if n == 0 {
		return ListRepresentation
	}
	matrixBytes := int64(n) * int64((n+7)/8)
	if matrixBytes > maxBitMatrixBytes {
		return ListRepresentation
	}
	if t.AverageDegree()*bitsPerListEntry >= float64(n) {
		return BitRepresentation
	}

	return ListRepresentation
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.topo.VertexCount }

// Degree returns the degree of v.
func (g *Graph) Degree(v int) int { return g.topo.Degrees[v] }

// Attribute returns the label of v (0 without vertex attributes).
func (g *Graph) Attribute(v int) int { return g.topo.Attribute(v) }

// MaxDegree returns the largest degree.
func (g *Graph) MaxDegree() int { return g.maxDegree }

// Representation returns the resolved encoding (never AutoRepresentation).
func (g *Graph) Representation() Representation { return g.rep }

// HasEdgeAttributes reports whether the underlying topology labels edges.
func (g *Graph) HasEdgeAttributes() bool { return g.topo.HasEdgeAttributes() }

// HasEdge reports whether {u,v} is an edge: O(1) on bit rows,
// O(log deg) on lists.
func (g *Graph) HasEdge(u, v int) bool {
	if g.rows != nil {
		return g.rows[u].Test(v)
	}

	return g.topo.HasEdge(u, v)
}

// EdgeAttribute returns the label of {u,v}, 0 when absent or unlabeled.
func (g *Graph) EdgeAttribute(u, v int) int {
	a, _ := g.topo.EdgeAttribute(u, v)

	return a
}

// Neighbors returns the sorted neighbor ids of v. Must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.topo.Row(v) }

// Row returns the adjacency bit row of v, nil in list mode.
// Must not be modified.
func (g *Graph) Row(v int) *bitvec.BitVector {
	if g.rows == nil {
		return nil
	}

	return g.rows[v]
}

// Topology returns the wrapped topology.
func (g *Graph) Topology() *topology.Topology { return g.topo }
