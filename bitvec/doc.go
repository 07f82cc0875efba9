// Package bitvec provides a fixed-capacity bit-vector over dense vertex ids.
//
// A BitVector owns ceil(capacity/8) bytes. Bit i is set iff element i is
// present. The buffer is allocated once by New and never resized; every
// mutating operation works in place, so hot loops (candidate intersection in
// subgraph matching) run without allocations.
//
// Operations:
//
//	Set(v), Unset(v), Test(v)   // byte v>>3, mask 1<<(v&7)            O(1)
//	And / Or / Xor(other)       // in place; other must be ≥ capacity  O(n/8)
//	Not()                       // in place complement, tail bits kept 0
//	AndNot(other)               // fused this &= ^other                O(n/8)
//	Popcount()                  // table or hardware strategy           O(n/8)
//	VertexIDs(out)              // ascending set positions into out    O(n/8 + k)
//
// Preconditions are asserted, not returned: a binary operation whose
// operand is shorter than the receiver panics. Inputs reaching these calls
// come from one target graph, so a mismatch is a programmer error.
//
// Popcount strategy:
//
//	The package probes the CPU once at init (golang.org/x/sys/cpu) and picks
//	either a 256-entry byte lookup table or a 64-bit word popcount backed by
//	math/bits (lowered to POPCNT/CNT where available). Both return identical
//	counts; PopcountStrategy reports the choice.
package bitvec
