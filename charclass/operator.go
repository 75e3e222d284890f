// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charclass

import "sync"

// Characters that may begin a Swift operator, from the operator-head
// production of The Swift Programming Language grammar.
const operatorHeadLiterals = "/=-+!*%<>&|^~?."

var operatorHeadRanges = []Range{
	{0xA1, 0xA7},
	{0xA9, 0xA9},
	{0xAB, 0xAB},
	{0xAC, 0xAC},
	{0xAE, 0xAE},
	{0xB0, 0xB1},
	{0xB6, 0xB6},
	{0xBB, 0xBB},
	{0xBF, 0xBF},
	{0xD7, 0xD7},
	{0xF7, 0xF7},
	{0x2016, 0x2017},
	{0x2020, 0x2027},
	{0x2030, 0x203E},
	{0x2041, 0x2053},
	{0x2055, 0x205E},
	{0x2190, 0x23FF},
	{0x2500, 0x2775},
	{0x2794, 0x2BFF},
	{0x2E00, 0x2E7F},
	{0x3001, 0x3003},
	{0x3008, 0x3030},
}

var operatorHead = sync.OnceValue(func() *Set {
	return NewSet(operatorHeadLiterals, operatorHeadRanges...)
})

// OperatorHead returns the class of Swift operator-head characters.
// The returned Set is shared; Sets have no mutating methods.
func OperatorHead() *Set {
	return operatorHead()
}
