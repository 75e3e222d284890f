// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charclass defines named sets of Unicode code points.
//
// A Class is only a membership predicate. Standard classes delegate to the
// Unicode category tables, explicit classes (Set) are materialized as
// sorted, disjoint ranges.
package charclass

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/RoaringBitmap/roaring/v2"
)

// Class is a set of Unicode code points.
//
// Contains must be total: it reports false, and never panics, for values
// outside [0, unicode.MaxRune].
type Class interface {
	Contains(r rune) bool
}

// ErrMissingSelector is returned when no class name was given.
var ErrMissingSelector = errors.New("missing character set name")

// UnknownClassError reports a class name that is not recognized.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown character set name: %s", e.Name)
}

// Range is an inclusive range of code points.
type Range struct {
	Lo, Hi rune
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("U+%04X", r.Lo)
	}
	return fmt.Sprintf("U+%04X..U+%04X", r.Lo, r.Hi)
}

func inRange(r rune) bool {
	return r >= 0 && r <= unicode.MaxRune
}

// Union returns a class containing every code point of a or b.
// Neither argument is modified or retained by reference when both are Sets.
func Union(a, b Class) Class {
	sa, okA := a.(*Set)
	sb, okB := b.(*Set)
	if okA && okB {
		return &Set{rb: roaring.Or(sa.rb, sb.rb)}
	}
	return union{a, b}
}

type union struct {
	a, b Class
}

func (u union) Contains(r rune) bool {
	return u.a.Contains(r) || u.b.Contains(r)
}
