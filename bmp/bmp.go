// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bmp materializes a character class over the Basic Multilingual
// Plane as a bitmap of 16-bit words.
//
// Code points above U+FFFF are never evaluated. Classes with supplementary
// plane members (symbols, for example) are therefore truncated; this
// mirrors the bitmap the table format was designed around.
package bmp

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math/bits"

	"github.com/jlieske/chartable/charclass"
)

// Size is the number of code points covered by an Index.
const Size = 0x10000

// WordCount is the number of 16-bit words in an Index.
const WordCount = Size / 16

// IndexOutOfRangeError is the panic value of WordAt for a bad index.
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("bmp: word index %d out of range [0, %d)", e.Index, WordCount)
}

// Index is a read-only bitmap over the BMP. Bit k of word i is set iff
// code point 16*i+k is a member of the class it was built from.
type Index struct {
	words [WordCount]uint16
}

// Build evaluates c for every code point in [0, 0xFFFF].
func Build(c charclass.Class) *Index {
	ix := &Index{}
	for i := range ix.words {
		var w uint16
		base := rune(i * 16)
		for k := rune(0); k < 16; k++ {
			if c.Contains(base + k) {
				w |= 1 << k
			}
		}
		ix.words[i] = w
	}
	return ix
}

// WordAt returns the bits for code points [16*i, 16*i+15].
// It panics with *IndexOutOfRangeError if i is not in [0, WordCount).
func (ix *Index) WordAt(i int) uint16 {
	if i < 0 || i >= WordCount {
		panic(&IndexOutOfRangeError{Index: i})
	}
	return ix.words[i]
}

// Test reports whether r is set. Runes outside the BMP are never set.
func (ix *Index) Test(r rune) bool {
	if r < 0 || r >= Size {
		return false
	}
	return ix.words[r/16]&(1<<(r%16)) != 0
}

// Rows yields the index and value of every non-zero word, in order.
func (ix *Index) Rows() iter.Seq2[int, uint16] {
	return func(yield func(int, uint16) bool) {
		for i, w := range ix.words {
			if w == 0 {
				continue
			}
			if !yield(i, w) {
				return
			}
		}
	}
}

// Ranges yields the set bits as ascending, disjoint, non-adjacent
// inclusive ranges.
func (ix *Index) Ranges() iter.Seq[charclass.Range] {
	return func(yield func(charclass.Range) bool) {
		var cur charclass.Range
		open := false
		for i, w := range ix.Rows() {
			for w != 0 {
				k := bits.TrailingZeros16(w)
				w &= w - 1
				r := rune(i*16 + k)
				if open && cur.Hi+1 == r {
					cur.Hi = r
					continue
				}
				if open && !yield(cur) {
					return
				}
				cur, open = charclass.Range{Lo: r, Hi: r}, true
			}
		}
		if open {
			yield(cur)
		}
	}
}

// Cardinality returns the number of set bits.
func (ix *Index) Cardinality() int {
	n := 0
	for _, w := range ix.words {
		n += bits.OnesCount16(w)
	}
	return n
}

// Bytes returns the words in little-endian order, so that bit k of byte j
// is code point 8*j+k.
func (ix *Index) Bytes() []byte {
	b := make([]byte, 0, 2*WordCount)
	for _, w := range ix.words {
		b = binary.LittleEndian.AppendUint16(b, w)
	}
	return b
}
