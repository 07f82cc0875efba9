// SPDX-License-Identifier: MIT
// Package: subiso/bitvec
//
// bitvec.go — BitVector storage, bit addressing and boolean algebra.
//
// Policy:
//   - One byte buffer per vector, sized at construction, never resized.
//   - Bits at positions ≥ capacity are always zero (Not/Fill re-mask the tail).
//   - Binary operations assert len(other) ≥ len(receiver); they never allocate.

package bitvec

import (
	"fmt"
	"math/bits"
)

const (
	byteShift = 3 // v >> byteShift selects the byte holding bit v
	bitMask   = 7 // v & bitMask selects the bit inside that byte
)

// BitVector is a fixed-capacity set of small non-negative integers.
// The zero value is an empty vector of capacity 0.
type BitVector struct {
	data     []byte
	capacity int
}

// New allocates a zeroed vector able to hold ids in [0, capacity).
//
// Errors:
//   - ErrNegativeCapacity: capacity < 0.
//
// Complexity: O(capacity/8) time and space.
func New(capacity int) (*BitVector, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("New: capacity=%d: %w", capacity, ErrNegativeCapacity)
	}

	return &BitVector{data: make([]byte, byteLen(capacity)), capacity: capacity}, nil
}

// MustNew is New for capacities already known to be valid; it panics otherwise.
func MustNew(capacity int) *BitVector {
	bv, err := New(capacity)
	if err != nil {
		panic(err)
	}

	return bv
}

// FromIDs builds a vector of the given capacity with every id in ids set.
func FromIDs(capacity int, ids ...int) (*BitVector, error) {
	bv, err := New(capacity)
	if err != nil {
		return nil, err
	}
	for _, v := range ids {
		if v < 0 || v >= capacity {
			return nil, fmt.Errorf("FromIDs: id=%d outside [0,%d): %w", v, capacity, ErrIndexOutOfRange)
		}
		bv.Set(v)
	}

	return bv, nil
}

func byteLen(capacity int) int { return (capacity + bitMask) >> byteShift }

// Capacity returns the number of addressable bits.
func (b *BitVector) Capacity() int { return b.capacity }

// Bytes exposes the backing buffer. Callers must not retain it past the
// vector's lifetime or set bits beyond Capacity.
func (b *BitVector) Bytes() []byte { return b.data }

// Set marks v present.
func (b *BitVector) Set(v int) { b.data[v>>byteShift] |= 1 << uint(v&bitMask) }

// Unset marks v absent.
func (b *BitVector) Unset(v int) { b.data[v>>byteShift] &^= 1 << uint(v&bitMask) }

// Test reports whether v is present.
func (b *BitVector) Test(v int) bool {
	return b.data[v>>byteShift]&(1<<uint(v&bitMask)) != 0
}

// Clear unsets every bit.
func (b *BitVector) Clear() { clear(b.data) }

// Fill sets every bit in [0, Capacity).
func (b *BitVector) Fill() {
	for i := range b.data {
		b.data[i] = 0xFF
	}
	b.maskTail()
}

// CopyFrom overwrites the receiver with the first Capacity bits of other.
func (b *BitVector) CopyFrom(other *BitVector) {
	b.assertOperand(other)
	copy(b.data, other.data[:len(b.data)])
	b.maskTail()
}

// Clone returns an independent copy.
func (b *BitVector) Clone() *BitVector {
	out := &BitVector{data: make([]byte, len(b.data)), capacity: b.capacity}
	copy(out.data, b.data)

	return out
}

// And intersects the receiver with other in place.
func (b *BitVector) And(other *BitVector) {
	b.assertOperand(other)
	src := other.data[:len(b.data)]
	for i := range b.data {
		b.data[i] &= src[i]
	}
}

// Or unions other into the receiver in place.
func (b *BitVector) Or(other *BitVector) {
	b.assertOperand(other)
	src := other.data[:len(b.data)]
	for i := range b.data {
		b.data[i] |= src[i]
	}
	b.maskTail()
}

// Xor applies symmetric difference with other in place.
func (b *BitVector) Xor(other *BitVector) {
	b.assertOperand(other)
	src := other.data[:len(b.data)]
	for i := range b.data {
		b.data[i] ^= src[i]
	}
	b.maskTail()
}

// AndNot removes every bit of other from the receiver (b &= ^other) without
// materializing the complement.
func (b *BitVector) AndNot(other *BitVector) {
	b.assertOperand(other)
	src := other.data[:len(b.data)]
	for i := range b.data {
		b.data[i] &^= src[i]
	}
}

// Not complements the receiver in place within [0, Capacity).
func (b *BitVector) Not() {
	for i := range b.data {
		b.data[i] = ^b.data[i]
	}
	b.maskTail()
}

// Popcount returns the number of set bits.
func (b *BitVector) Popcount() int { return popcountFn(b.data) }

// Empty reports whether no bit is set.
func (b *BitVector) Empty() bool {
	for _, x := range b.data {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether both vectors have the same capacity and bits.
func (b *BitVector) Equal(other *BitVector) bool {
	if other == nil || b.capacity != other.capacity {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// VertexIDs writes every set position into out in ascending order and
// returns how many were written. out must have room for Popcount() ids.
//
// Complexity: O(Capacity/8 + k) for k set bits.
func (b *BitVector) VertexIDs(out []int) int {
	var n int
	for i, x := range b.data {
		base := i << byteShift
		for x != 0 {
			out[n] = base + bits.TrailingZeros8(x)
			n++
			x &= x - 1
		}
	}

	return n
}

// AppendIDs appends every set position to dst in ascending order.
func (b *BitVector) AppendIDs(dst []int) []int {
	for i, x := range b.data {
		base := i << byteShift
		for x != 0 {
			dst = append(dst, base+bits.TrailingZeros8(x))
			x &= x - 1
		}
	}

	return dst
}

// MinIndex returns the lowest set position, or -1 if the vector is empty.
func (b *BitVector) MinIndex() int {
	for i, x := range b.data {
		if x != 0 {
			return i<<byteShift + bits.TrailingZeros8(x)
		}
	}

	return -1
}

// MaxIndex returns the highest set position, or -1 if the vector is empty.
func (b *BitVector) MaxIndex() int {
	for i := len(b.data) - 1; i >= 0; i-- {
		if x := b.data[i]; x != 0 {
			return i<<byteShift + bits.Len8(x) - 1
		}
	}

	return -1
}

// String renders the set as "[1 4 7]" for diagnostics.
func (b *BitVector) String() string {
	return fmt.Sprint(b.AppendIDs(nil))
}

// maskTail zeroes the padding bits of the last byte.
func (b *BitVector) maskTail() {
	if r := b.capacity & bitMask; r != 0 {
		b.data[len(b.data)-1] &= byte(1<<uint(r)) - 1
	}
}

func (b *BitVector) assertOperand(other *BitVector) {
	if len(other.data) < len(b.data) {
		panic(fmt.Sprintf("bitvec: operand capacity %d < receiver capacity %d", other.capacity, b.capacity))
	}
}
