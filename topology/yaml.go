// SPDX-License-Identifier: MIT
// Package: subiso/topology
//
// yaml.go — YAML document codec for topologies.
//
// Document shape:
//
//	vertices: 5
//	attributes: [0, 0, 1, 1, 0]      # optional, one per vertex
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//	edge_attributes: [3, 4]          # optional, parallel to edges

package topology

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a Topology.
type Document struct {
	Vertices       int     `yaml:"vertices"`
	Attributes     []int   `yaml:"attributes,omitempty"`
	Edges          [][]int `yaml:"edges"`
	EdgeAttributes []int   `yaml:"edge_attributes,omitempty"`
}

// Topology converts the document into a validated Topology.
func (d Document) Topology() (*Topology, error) {
	const method = "Document.Topology"
	if d.Vertices < 0 {
		return nil, fmt.Errorf("%s: vertices=%d: %w", method, d.Vertices, ErrNegativeVertexCount)
	}
	if d.Attributes != nil && len(d.Attributes) != d.Vertices {
		return nil, fmt.Errorf("%s: attributes=%d vertices=%d: %w",
			method, len(d.Attributes), d.Vertices, ErrAttributeLength)
	}
	if d.EdgeAttributes != nil && len(d.EdgeAttributes) != len(d.Edges) {
		return nil, fmt.Errorf("%s: edge_attributes=%d edges=%d: %w",
			method, len(d.EdgeAttributes), len(d.Edges), ErrAttributeLength)
	}

	b := NewBuilder(d.Vertices)
	for v, a := range d.Attributes {
		if err := b.SetAttribute(v, a); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%s: edge #%d has %d endpoints: %w", method, i, len(e), ErrMalformedEdge)
		}
		var err error
		if d.EdgeAttributes != nil {
			err = b.AddLabeledEdge(e[0], e[1], d.EdgeAttributes[i])
		} else {
			err = b.AddEdge(e[0], e[1])
		}
		if err != nil {
			return nil, fmt.Errorf("%s: edge #%d: %w", method, i, err)
		}
	}

	return b.Build()
}

// Document returns the serialized form of t with each edge listed once (u < v).
func (t *Topology) Document() Document {
	d := Document{Vertices: t.VertexCount, Edges: make([][]int, 0, t.EdgeCount())}
	if t.Attributes != nil {
		d.Attributes = append([]int(nil), t.Attributes...)
	}
	for _, e := range t.Edges() {
		d.Edges = append(d.Edges, []int{e[0], e[1]})
		if t.EdgeAttributes != nil {
			label, _ := t.EdgeAttribute(e[0], e[1])
			d.EdgeAttributes = append(d.EdgeAttributes, label)
		}
	}

	return d
}

// Decode reads one YAML Document from r and builds its Topology.
func Decode(r io.Reader) (*Topology, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return d.Topology()
}

// Encode writes t to w as a YAML Document.
func Encode(w io.Writer, t *Topology) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Document()); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// LoadFile decodes the YAML document stored at path.
func LoadFile(path string) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return t, nil
}
