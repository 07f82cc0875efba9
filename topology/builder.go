// SPDX-License-Identifier: MIT
// Package: subiso/topology
//
// builder.go — incremental edge-list accumulation and CSR materialization.
//
// Contract:
//   - AddEdge validates endpoints immediately; Build never fails on edges
//     accepted earlier.
//   - Duplicate edges collapse to one; the first label supplied wins.
//   - Build output is deterministic for the same call sequence.

package topology

import (
	"fmt"
	"sort"
)

// Builder accumulates vertices, labels and undirected edges. It is not safe
// for concurrent use.
type Builder struct {
	n         int
	attrs     []int
	hasAttrs  bool
	edges     []labeledEdge
	hasLabels bool
}

type labeledEdge struct {
	u, v  int
	label int
}

// NewBuilder returns a Builder with n isolated vertices 0..n-1.
// Negative n is treated as 0; use EnsureVertices to grow later.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}

	return &Builder{n: n, attrs: make([]int, n)}
}

// VertexCount returns the current number of vertices.
func (b *Builder) VertexCount() int { return b.n }

// AddVertex appends one isolated vertex and returns its id.
func (b *Builder) AddVertex() int {
	b.attrs = append(b.attrs, 0)
	b.n++

	return b.n - 1
}

// EnsureVertices grows the vertex set to at least n vertices.
func (b *Builder) EnsureVertices(n int) {
	for b.n < n {
		b.AddVertex()
	}
}

// SetAttribute labels vertex v. Once any label is set, Build emits an
// Attributes slice (unlabeled vertices read 0).
func (b *Builder) SetAttribute(v, attr int) error {
	if v < 0 || v >= b.n {
		return fmt.Errorf("SetAttribute: v=%d n=%d: %w", v, b.n, ErrVertexOutOfRange)
	}
	b.attrs[v] = attr
	b.hasAttrs = true

	return nil
}

// AddEdge records the undirected edge {u,v} with label 0.
func (b *Builder) AddEdge(u, v int) error {
	return b.addEdge("AddEdge", u, v, 0)
}

// AddLabeledEdge records the undirected edge {u,v} carrying label. Once any
// labeled edge is added, Build emits EdgeAttributes.
func (b *Builder) AddLabeledEdge(u, v, label int) error {
	if err := b.addEdge("AddLabeledEdge", u, v, label); err != nil {
		return err
	}
	b.hasLabels = true

	return nil
}

func (b *Builder) addEdge(method string, u, v, label int) error {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return fmt.Errorf("%s(%d,%d): n=%d: %w", method, u, v, b.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("%s(%d,%d): %w", method, u, v, ErrSelfLoop)
	}
	b.edges = append(b.edges, labeledEdge{u: u, v: v, label: label})

	return nil
}

// Build materializes the CSR Topology.
//
// Implementation:
//   - Stage 1: Count both directions per vertex into Degrees (with duplicates).
//   - Stage 2: Scatter (neighbor,label) pairs into rows by prefix offsets.
//   - Stage 3: Sort each row, drop repeated neighbors, compact in place.
//
// Complexity: O(V + E log d) time, O(V + E) space.
func (b *Builder) Build() (*Topology, error) {
	n := b.n
	counts := make([]int, n+1)
	for _, e := range b.edges {
		counts[e.u+1]++
		counts[e.v+1]++
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}

	type slot struct{ v, label int }
	scratch := make([]slot, counts[n])
	cursor := make([]int, n)
	copy(cursor, counts[:n])
	for _, e := range b.edges {
		scratch[cursor[e.u]] = slot{v: e.v, label: e.label}
		cursor[e.u]++
		scratch[cursor[e.v]] = slot{v: e.u, label: e.label}
		cursor[e.v]++
	}

	t := &Topology{
		VertexCount: n,
		Degrees:     make([]int, n),
		Offsets:     make([]int, n+1),
		Neighbors:   make([]int, 0, len(scratch)),
	}
	var labels []int
	if b.hasLabels {
		labels = make([]int, 0, len(scratch))
	}
	for u := 0; u < n; u++ {
		row := scratch[counts[u]:counts[u+1]]
		// Stable keeps the first label of a duplicated edge.
		sort.SliceStable(row, func(i, j int) bool { return row[i].v < row[j].v })
		t.Offsets[u] = len(t.Neighbors)
		for i, s := range row {
			if i > 0 && row[i-1].v == s.v {
				continue
			}
			t.Neighbors = append(t.Neighbors, s.v)
			if labels != nil {
				labels = append(labels, s.label)
			}
		}
		t.Degrees[u] = len(t.Neighbors) - t.Offsets[u]
	}
	t.Offsets[n] = len(t.Neighbors)
	t.EdgeAttributes = labels
	if b.hasAttrs {
		t.Attributes = append([]int(nil), b.attrs...)
	}

	return t, nil
}

// FromEdges builds a Topology over n vertices from [u, v] pairs.
func FromEdges(n int, edges [][2]int) (*Topology, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrNegativeVertexCount)
	}
	b := NewBuilder(n)
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return b.Build()
}

// WithAttributes returns a copy of t carrying the given vertex labels.
func (t *Topology) WithAttributes(attrs []int) (*Topology, error) {
	if len(attrs) != t.VertexCount {
		return nil, fmt.Errorf("WithAttributes: len=%d n=%d: %w", len(attrs), t.VertexCount, ErrAttributeLength)
	}
	out := *t
	out.Attributes = append([]int(nil), attrs...)

	return &out, nil
}
