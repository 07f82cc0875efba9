// Package builder_test contains functional tests for every Constructor in
// the builder package: vertex/edge counts, sample adjacency, labels and
// error sentinels.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/topology"
)

func TestConstructors_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *topology.Topology)
	}{
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				for v := 0; v < 4; v++ {
					require.Equal(t, 3, g.Degree(v))
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				for i := 0; i < 3; i++ {
					require.True(t, g.HasEdge(i, i+1), "missing %d-%d", i, i+1)
				}
				require.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				for i := 0; i < 5; i++ {
					require.True(t, g.HasEdge(i, (i+1)%5))
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				require.Equal(t, 3, g.Degree(0))
				require.False(t, g.HasEdge(1, 2))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8, // 4 rim + 4 spokes
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				require.True(t, g.HasEdge(0, 1))
				require.True(t, g.HasEdge(3, 0))
				require.Equal(t, 4, g.Degree(4))
				require.False(t, g.HasEdge(0, 2))
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				require.False(t, g.HasEdge(0, 1))
				require.False(t, g.HasEdge(2, 3))
				require.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *topology.Topology) {
				require.True(t, g.HasEdge(0, 1))
				require.True(t, g.HasEdge(1, 4))
				require.False(t, g.HasEdge(2, 3))
				require.Equal(t, 3, g.Degree(1))
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
		{
			name:  "Vertices(3)",
			ctor:  builder.Vertices(3),
			wantV: 3, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildTopology(nil, tc.ctor)
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			require.Equal(t, tc.wantV, g.VertexCount)
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(2,0)", builder.Grid(2, 0), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(4,1.5)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(4,-0.1)", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(4,0.5) no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"Vertices(-1)", builder.Vertices(-1), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildTopology(nil, tc.ctor)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRandomSparse_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, err := builder.BuildTopology(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildTopology([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	require.Positive(t, a.EdgeCount())
}

func TestBuildTopology_ComposesConstructors(t *testing.T) {
	t.Parallel()

	// K4 on 0..3, then grow to 5 vertices: vertex 4 stays isolated.
	g := builder.MustBuild(nil, builder.Complete(4), builder.Vertices(5))
	require.Equal(t, 5, g.VertexCount)
	require.Equal(t, 6, g.EdgeCount())
	require.Zero(t, g.Degree(4))
}

func TestBuildTopology_Labels(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{
		builder.WithAttributeFn(func(v int) int { return v % 2 }),
		builder.WithEdgeLabelFn(func(u, v int) int { return u*10 + v }),
	}
	g, err := builder.BuildTopology(opts, builder.Cycle(4))
	require.NoError(t, err)
	require.True(t, g.HasVertexAttributes())
	require.True(t, g.HasEdgeAttributes())
	require.Equal(t, 1, g.Attribute(3))

	// closing edge {3,0} is normalized to (0,3) before labeling.
	label, ok := g.EdgeAttribute(3, 0)
	require.True(t, ok)
	require.Equal(t, 3, label)
	label, ok = g.EdgeAttribute(1, 2)
	require.True(t, ok)
	require.Equal(t, 12, label)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithAttributeFn(nil) })
	require.Panics(t, func() { builder.WithEdgeLabelFn(nil) })
}

func TestMustBuild_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.MustBuild(nil, builder.Path(0)) })
}
