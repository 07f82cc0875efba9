package subiso_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso"
	"github.com/katalvlaran/subiso/topology"
)

// sortRows orders rows lexicographically for unordered comparison.
var sortRows = cmpopts.SortSlices(func(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
})

// requireSameRows fails unless got and want hold the same multiset of rows.
func requireSameRows(t *testing.T, want [][]int, got subiso.Table) {
	t.Helper()
	rows := got.RowSlices()
	if diff := cmp.Diff(want, rows, sortRows, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// requireValidEmbeddings checks every row against the definition of an
// embedding of the given kind.
func requireValidEmbeddings(t *testing.T, pattern, target *topology.Topology, tab subiso.Table, kind subiso.Kind) {
	t.Helper()
	n := pattern.VertexCount
	for i := 0; i < tab.Rows; i++ {
		row := tab.Row(i)
		require.Len(t, row, n)

		seen := make(map[int]bool, n)
		for p, v := range row {
			require.False(t, seen[v], "row %d repeats target vertex %d", i, v)
			seen[v] = true
			require.Equal(t, pattern.Attribute(p), target.Attribute(v), "row %d attribute", i)
			require.LessOrEqual(t, pattern.Degree(p), target.Degree(v), "row %d degree", i)
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				pe := pattern.HasEdge(p, q)
				te := target.HasEdge(row[p], row[q])
				if kind == subiso.Induced {
					require.Equal(t, pe, te, "row %d pair (%d,%d)", i, p, q)
				} else if pe {
					require.True(t, te, "row %d pair (%d,%d)", i, p, q)
				}
			}
		}
	}
}

// bruteForce enumerates embeddings by trying every injective assignment.
// Only for tiny graphs.
func bruteForce(pattern, target *topology.Topology, kind subiso.Kind) [][]int {
	n, m := pattern.VertexCount, target.VertexCount
	var (
		out  [][]int
		row  = make([]int, n)
		used = make([]bool, m)
		rec  func(p int)
	)
	rec = func(p int) {
		if p == n {
			out = append(out, append([]int(nil), row...))
			return
		}
		for v := 0; v < m; v++ {
			if used[v] || pattern.Attribute(p) != target.Attribute(v) || pattern.Degree(p) > target.Degree(v) {
				continue
			}
			ok := true
			for q := 0; q < p && ok; q++ {
				pe, te := pattern.HasEdge(p, q), target.HasEdge(v, row[q])
				if kind == subiso.Induced {
					ok = pe == te
				} else {
					ok = !pe || te
				}
			}
			if !ok {
				continue
			}
			used[v] = true
			row[p] = v
			rec(p + 1)
			used[v] = false
		}
	}
	if n > 0 && n <= m {
		rec(0)
	}

	return out
}

func mustEdges(t testing.TB, n int, edges ...[2]int) *topology.Topology {
	t.Helper()
	g, err := topology.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}
