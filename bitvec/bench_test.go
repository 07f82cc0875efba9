// Package bitvec_test provides benchmarks for the hot-path operations used by
// candidate generation.
package bitvec_test

import (
	"testing"

	"github.com/katalvlaran/subiso/bitvec"
)

const benchCapacity = 1 << 14

func benchPair() (*bitvec.BitVector, *bitvec.BitVector) {
	a := bitvec.MustNew(benchCapacity)
	b := bitvec.MustNew(benchCapacity)
	for i := 0; i < benchCapacity; i += 3 {
		a.Set(i)
	}
	for i := 0; i < benchCapacity; i += 5 {
		b.Set(i)
	}

	return a, b
}

// BenchmarkAnd measures an in-place intersection over 16K bits.
func BenchmarkAnd(b *testing.B) {
	x, y := benchPair()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.And(y)
	}
}

// BenchmarkPopcount measures the strategy selected at init.
func BenchmarkPopcount(b *testing.B) {
	x, _ := benchPair()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Popcount()
	}
}

// BenchmarkVertexIDs measures id extraction into a preallocated buffer.
func BenchmarkVertexIDs(b *testing.B) {
	x, _ := benchPair()
	out := make([]int, benchCapacity)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.VertexIDs(out)
	}
}
