// SPDX-License-Identifier: MIT
// Package: subiso/topology
//
// gonum.go — adapters between gonum undirected graphs and Topology.
//
// Contract:
//   - FromGonum maps gonum node ids to dense indices in ascending id order
//     and returns that mapping so results can be translated back.
//   - ToGonum uses node ids 0..n-1.

package topology

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromGonum converts g into a Topology. attrFn, if non-nil, labels each node.
// The returned slice maps dense index → gonum node id.
//
// Errors: ErrSelfLoop if g reports a node adjacent to itself.
//
// Complexity: O(V log V + E log d).
func FromGonum(g graph.Undirected, attrFn func(graph.Node) int) (*Topology, []int64, error) {
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	ids := make([]int64, len(nodes))
	index := make(map[int64]int, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
		index[nd.ID()] = i
	}

	b := NewBuilder(len(nodes))
	for i, nd := range nodes {
		if attrFn != nil {
			if err := b.SetAttribute(i, attrFn(nd)); err != nil {
				return nil, nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
		it := g.From(nd.ID())
		for it.Next() {
			j := index[it.Node().ID()]
			if j == i {
				return nil, nil, fmt.Errorf("FromGonum: node %d: %w", nd.ID(), ErrSelfLoop)
			}
			// Each undirected edge is reported from both ends; record it once.
			if i < j {
				if err := b.AddEdge(i, j); err != nil {
					return nil, nil, fmt.Errorf("FromGonum: %w", err)
				}
			}
		}
	}
	t, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	return t, ids, nil
}

// ToGonum returns a gonum simple undirected graph with nodes 0..n-1.
func ToGonum(t *Topology) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for v := 0; v < t.VertexCount; v++ {
		g.AddNode(simple.Node(v))
	}
	for _, e := range t.Edges() {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	return g
}
