// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	for name, want := range map[string]Selector{
		"letters":     Letters,
		"punctuation": Punctuation,
		"symbols":     Symbols,
		"sympunct":    SymbolsAndPunctuation,
		"operators":   Operators,
	} {
		got, err := ParseSelector(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseSelector("")
	assert.ErrorIs(t, err, ErrMissingSelector)

	_, err = ParseSelector("foo")
	var unknown *UnknownClassError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "foo", unknown.Name)
	assert.EqualError(t, err, "unknown character set name: foo")
}

func TestSelectorClass(t *testing.T) {
	for _, s := range Selectors {
		c, err := s.Class()
		require.NoError(t, err, s.String())
		require.NotNil(t, c)
		assert.NotEmpty(t, s.Title())
	}
	assert.Equal(t, "Swift Operator Head", Operators.Title())
	assert.Equal(t, "Selector(42)", Selector(42).String())

	_, err := Selector(42).Class()
	assert.Error(t, err)

	c, err := SymbolsAndPunctuation.Class()
	require.NoError(t, err)
	assert.True(t, c.Contains('+'))
	assert.True(t, c.Contains('.'))
	assert.False(t, c.Contains('A'))
}
