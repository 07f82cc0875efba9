package topology_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/subiso/topology"
)

func TestFromGonum_SparseIDs(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{10, 20, 30} {
		g.AddNode(simple.Node(id))
	}
	g.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(20)})
	g.SetEdge(simple.Edge{F: simple.Node(20), T: simple.Node(30)})

	top, ids, err := topology.FromGonum(g, func(n graph.Node) int { return int(n.ID() / 10) })
	require.NoError(t, err)
	require.NoError(t, top.Validate())
	assert.Equal(t, []int64{10, 20, 30}, ids)
	assert.Equal(t, 2, top.EdgeCount())
	assert.True(t, top.HasEdge(0, 1))
	assert.True(t, top.HasEdge(1, 2))
	assert.False(t, top.HasEdge(0, 2))
	assert.Equal(t, []int{1, 2, 3}, top.Attributes)
}

func TestGonum_RoundTrip(t *testing.T) {
	src, err := topology.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	require.NoError(t, err)

	g := topology.ToGonum(src)
	back, _, err := topology.FromGonum(g, nil)
	require.NoError(t, err)
	assert.Equal(t, src.Edges(), back.Edges())
	assert.Equal(t, src.Degrees, back.Degrees)
	assert.Nil(t, back.Attributes)
}

const sampleDoc = `
vertices: 4
attributes: [1, 1, 2, 2]
edges:
  - [0, 1]
  - [1, 2]
  - [2, 3]
edge_attributes: [7, 8, 9]
`

func TestDecode(t *testing.T) {
	top, err := topology.Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.NoError(t, top.Validate())
	assert.Equal(t, 4, top.VertexCount)
	assert.Equal(t, []int{1, 1, 2, 2}, top.Attributes)
	label, ok := top.EdgeAttribute(2, 1)
	require.True(t, ok)
	assert.Equal(t, 8, label)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	top, err := topology.Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, topology.Encode(&buf, top))
	back, err := topology.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, top, back)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"malformed edge", "vertices: 3\nedges: [[0, 1, 2]]\n", topology.ErrMalformedEdge},
		{"out of range", "vertices: 2\nedges: [[0, 5]]\n", topology.ErrVertexOutOfRange},
		{"self loop", "vertices: 2\nedges: [[1, 1]]\n", topology.ErrSelfLoop},
		{"attribute length", "vertices: 2\nattributes: [1]\nedges: []\n", topology.ErrAttributeLength},
		{"edge attribute length", "vertices: 2\nedges: [[0, 1]]\nedge_attributes: [1, 2]\n", topology.ErrAttributeLength},
		{"negative", "vertices: -3\nedges: []\n", topology.ErrNegativeVertexCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := topology.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_InvalidYAML(t *testing.T) {
	_, err := topology.Decode(strings.NewReader("vertices: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))
	top, err := topology.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, top.EdgeCount())

	_, err = topology.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
