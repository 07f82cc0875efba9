// Package topology holds the immutable graph input consumed by subgraph
// matching: a simple undirected graph in CSR (compressed sparse row) form
// with optional per-vertex and per-edge integer attributes.
//
// A Topology over n vertices stores:
//
//	VertexCount      n
//	Degrees[v]       number of neighbors of v
//	Offsets[v]       start of v's row in Neighbors (len n+1)
//	Neighbors        concatenated rows, each sorted ascending, no duplicates
//	Attributes[v]    optional vertex label (nil ⇒ all zero)
//	EdgeAttributes   optional edge label parallel to Neighbors (nil ⇒ all zero)
//
// Rows are symmetric: u ∈ row(v) ⇔ v ∈ row(u). Self-loops are rejected.
//
// Construction paths:
//
//	NewBuilder(n) … AddEdge(u,v) … Build()   // incremental edge list
//	FromEdges(n, edges)                       // one-shot convenience
//	FromGonum(g, attrFn)                      // gonum graph.Undirected adapter
//	Decode(r) / LoadFile(path)                // YAML document (see Document)
//
// Errors:
//
//	ErrVertexOutOfRange   - an edge or attribute references a vertex ∉ [0,n).
//	ErrSelfLoop           - an edge (v,v) was supplied.
//	ErrAttributeLength    - attribute slice length does not match n or edges.
//	ErrMalformedEdge      - a decoded edge is not a [u, v] pair.
//	ErrInvalidTopology    - Validate found a broken CSR invariant.
//	ErrNegativeVertexCount - n < 0.
package topology
