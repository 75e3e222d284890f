// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charclass

//go:generate stringer -type=Selector -linecomment

// Selector names one of the classes the command can render.
// String returns the name accepted on the command line.
type Selector int

const (
	Letters               Selector = iota // letters
	Punctuation                           // punctuation
	Symbols                               // symbols
	SymbolsAndPunctuation                 // sympunct
	Operators                             // operators
)

// Selectors lists every Selector in command-line order.
var Selectors = []Selector{Letters, Punctuation, Symbols, SymbolsAndPunctuation, Operators}

// ParseSelector decodes a command-line class name.
func ParseSelector(name string) (Selector, error) {
	if name == "" {
		return 0, ErrMissingSelector
	}
	for _, s := range Selectors {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, &UnknownClassError{Name: name}
}

// Title is the heading used for the rendered table.
func (s Selector) Title() string {
	switch s {
	case Letters:
		return "Letters"
	case Punctuation:
		return "Punctuation"
	case Symbols:
		return "Symbols"
	case SymbolsAndPunctuation:
		return "Symbols and Punctuation"
	case Operators:
		return "Swift Operator Head"
	}
	return s.String()
}

// Class builds the class s selects.
func (s Selector) Class() (Class, error) {
	switch s {
	case Letters:
		return Standard(LettersName)
	case Punctuation:
		return Standard(PunctuationName)
	case Symbols:
		return Standard(SymbolsName)
	case SymbolsAndPunctuation:
		sym, err := Standard(SymbolsName)
		if err != nil {
			return nil, err
		}
		punct, err := Standard(PunctuationName)
		if err != nil {
			return nil, err
		}
		return Union(sym, punct), nil
	case Operators:
		return OperatorHead(), nil
	}
	return nil, &UnknownClassError{Name: s.String()}
}
