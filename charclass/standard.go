// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Names of the standard classes accepted by Standard.
const (
	LettersName     = "letters"
	PunctuationName = "punctuation"
	SymbolsName     = "symbols"
)

// Letters include marks, as in Apple's letterCharacterSet.
var letters = rangetable.Merge(unicode.L, unicode.M)

// table adapts a unicode.RangeTable to Class.
type table struct {
	rt *unicode.RangeTable
}

func (t table) Contains(r rune) bool {
	return inRange(r) && unicode.Is(t.rt, r)
}

// Standard returns the named category class: letters (L and M),
// punctuation (P) or symbols (S).
func Standard(name string) (Class, error) {
	switch name {
	case LettersName:
		return table{letters}, nil
	case PunctuationName:
		return table{unicode.P}, nil
	case SymbolsName:
		return table{unicode.S}, nil
	}
	return nil, &UnknownClassError{Name: name}
}

// FromTable wraps any unicode.RangeTable as a Class.
func FromTable(rt *unicode.RangeTable) Class {
	return table{rt}
}
