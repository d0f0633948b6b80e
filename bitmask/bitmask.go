// Package bitmask provides the terminal-subset arithmetic used by the
// Steiner dynamic programs: a Mask type, the full-mask constructor, the
// non-empty proper submask iterator, and the two-group balance predicate.
//
// A Mask is a k-bit set over terminal indices 0..k-1; bit i set means
// terminal i is part of the subset. Both the empty mask and Full(k) are
// valid values.
package bitmask

import (
	"iter"
	"math/bits"
)

// MaxTerminals is the widest terminal set a Mask may describe. Tables sized
// by 1<<k grow quickly; practical instances stay at k ≤ 12.
const MaxTerminals = 20

// Mask is a subset of terminal indices.
type Mask uint32

// Bit returns the mask holding only terminal i.
func Bit(i int) Mask { return Mask(1) << uint(i) }

// Full returns the mask with terminals 0..k-1 set.
func Full(k int) Mask { return Mask(1)<<uint(k) - 1 }

// Has reports whether terminal i is in m.
func (m Mask) Has(i int) bool { return m&Bit(i) != 0 }

// Count returns the number of terminals in m.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Submasks yields every non-empty proper submask of m in descending order,
// each exactly once.
//
// The walk is s = m & (s-1) starting from m & (m-1) and stopping before 0,
// so a mask with c bits yields 2^c - 2 values. The sequence is lazy and
// restartable: each range over it starts again from the top.
func Submasks(m Mask) iter.Seq[Mask] {
	return func(yield func(Mask) bool) {
		for s := m & (m - 1); s != 0; s = m & (s - 1) {
			if !yield(s) {
				return
			}
		}
	}
}

// Balanced reports whether m holds as many terminals from the first group
// (bits 0..h-1) as from the second group (bits h..2h-1). Bits above 2h-1
// are ignored.
func Balanced(m Mask, h int) bool {
	low := Full(h)
	return (m & low).Count() == ((m >> uint(h)) & low).Count()
}
