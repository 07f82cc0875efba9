// Benchmarks for end-to-end searches on both target encodings.
package subiso_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/subiso"
	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/topology"
)

func benchMatch(b *testing.B, pattern, target *topology.Topology, opts ...subiso.Option) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subiso.Match(context.Background(), pattern, target, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatch_C4InDenseRandom stresses bit intersections.
func BenchmarkMatch_C4InDenseRandom(b *testing.B) {
	pattern := builder.MustBuild(nil, builder.Cycle(4))
	target := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(64, 0.3))
	benchMatch(b, pattern, target, subiso.WithRepresentation(subiso.BitRepresentation))
}

// BenchmarkMatch_C4InDenseRandomList is the same search on neighbor lists.
func BenchmarkMatch_C4InDenseRandomList(b *testing.B) {
	pattern := builder.MustBuild(nil, builder.Cycle(4))
	target := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(64, 0.3))
	benchMatch(b, pattern, target, subiso.WithRepresentation(subiso.ListRepresentation))
}

// BenchmarkMatch_StarInGrid runs a sparse, list-friendly search.
func BenchmarkMatch_StarInGrid(b *testing.B) {
	pattern := builder.MustBuild(nil, builder.Star(4))
	target := builder.MustBuild(nil, builder.Grid(40, 40))
	benchMatch(b, pattern, target, subiso.WithKind(subiso.NonInduced))
}

// BenchmarkMatch_SingleWorker isolates the engine from donation overhead.
func BenchmarkMatch_SingleWorker(b *testing.B) {
	pattern := builder.MustBuild(nil, builder.Complete(4))
	target := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(2)}, builder.RandomSparse(48, 0.5))
	benchMatch(b, pattern, target, subiso.WithWorkers(1))
}
