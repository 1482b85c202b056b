// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bitset defines a fixed-size bit set suitable for
// storing boolean flags indexed by small integers.
package bitset

import (
	"iter"
	"math/bits"
)

// nbit is the number of bits in a word.
const nbit = 64

// Set is a fixed-size set of bits.
// The zero value is an empty set of length zero.
type Set struct {
	s []uint64
	n int
}

// New creates a Set with n unset bits.
func New(n int) Set {
	if n < 0 {
		n = 0
	}
	return Set{s: make([]uint64, (n+nbit-1)/nbit), n: n}
}

// Len returns the number of bits in the set.
func (b *Set) Len() int { return b.n }

// Count returns the number of set bits.
func (b *Set) Count() (n int) {
	for _, x := range b.s {
		n += bits.OnesCount64(x)
	}
	return
}

// Set sets a given bit.
func (b *Set) Set(index int) {
	b.check(index)
	b.s[index/nbit] |= 1 << (index & (nbit - 1))
}

// Unset unsets a given bit.
func (b *Set) Unset(index int) {
	b.check(index)
	b.s[index/nbit] &^= 1 << (index & (nbit - 1))
}

// Put sets or unsets a given bit depending on v.
func (b *Set) Put(index int, v bool) {
	if v {
		b.Set(index)
	} else {
		b.Unset(index)
	}
}

// IsSet checks whether a given bit is set.
// Indices out of range are reported as unset.
func (b *Set) IsSet(index int) bool {
	if index < 0 || index >= b.n {
		return false
	}
	return b.s[index/nbit]&(1<<(index&(nbit-1))) != 0
}

// Clear unsets every bit in the set.
func (b *Set) Clear() { clear(b.s) }

// All returns an iterator over all bits of the set.
// The first value in the pair represents the index of the
// bit, while the second indicates whether the bit is set.
func (b *Set) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := range b.n {
			if !yield(i, b.s[i/nbit]&(1<<(i&(nbit-1))) != 0) {
				return
			}
		}
	}
}

// Clone returns a copy of b that shares no memory with it.
func (b *Set) Clone() Set {
	return Set{s: append([]uint64(nil), b.s...), n: b.n}
}

func (b *Set) check(index int) {
	if index < 0 || index >= b.n {
		panic("bitset: index out of range")
	}
}
