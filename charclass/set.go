// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charclass

import (
	"unicode"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an explicit class built from literal runes and ranges.
// A Set is immutable once constructed.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet returns the set of every rune in literals plus every code point
// covered by ranges. Values outside [0, unicode.MaxRune] are dropped, and
// ranges with Lo > Hi are empty.
func NewSet(literals string, ranges ...Range) *Set {
	rb := roaring.New()
	for _, r := range literals {
		rb.Add(uint32(r))
	}
	for _, r := range ranges {
		lo, hi := max(r.Lo, 0), min(r.Hi, unicode.MaxRune)
		if lo > hi {
			continue
		}
		rb.AddRange(uint64(lo), uint64(hi)+1)
	}
	rb.RunOptimize()
	return &Set{rb: rb}
}

// Contains reports whether r is a member of s.
func (s *Set) Contains(r rune) bool {
	if !inRange(r) {
		return false
	}
	return s.rb.Contains(uint32(r))
}

// Len returns the number of code points in s.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Ranges returns the members of s as sorted, disjoint, non-adjacent
// inclusive ranges.
func (s *Set) Ranges() []Range {
	var out []Range
	it := s.rb.Iterator()
	for it.HasNext() {
		r := rune(it.Next())
		if n := len(out); n > 0 && out[n-1].Hi+1 == r {
			out[n-1].Hi = r
			continue
		}
		out = append(out, Range{Lo: r, Hi: r})
	}
	return out
}

// RangeTable returns s in the form used by the unicode package.
func (s *Set) RangeTable() *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	for _, r := range s.Ranges() {
		switch {
		case r.Hi <= 0xFFFF:
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r.Lo), Hi: uint16(r.Hi), Stride: 1})
		case r.Lo > 0xFFFF:
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(r.Lo), Hi: uint32(r.Hi), Stride: 1})
		default:
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r.Lo), Hi: 0xFFFF, Stride: 1})
			rt.R32 = append(rt.R32, unicode.Range32{Lo: 0x10000, Hi: uint32(r.Hi), Stride: 1})
		}
	}
	for _, r := range rt.R16 {
		if r.Hi <= unicode.MaxLatin1 {
			rt.LatinOffset++
		}
	}
	return rt
}
