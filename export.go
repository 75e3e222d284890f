// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"howett.net/plist"

	"github.com/jlieske/chartable/bmp"
	"github.com/jlieske/chartable/charclass"
)

// classDump is the property list form of a rendered class. Bitmap has the
// layout of the BMP part of NSCharacterSet's bitmapRepresentation.
type classDump struct {
	Name        string      `plist:"name"`
	Title       string      `plist:"title"`
	Cardinality int         `plist:"cardinality"`
	Ranges      []rangeDump `plist:"ranges"`
	Bitmap      []byte      `plist:"bitmap"`
}

type rangeDump struct {
	Lo int `plist:"lo"`
	Hi int `plist:"hi"`
}

func writePlist(w io.Writer, sel charclass.Selector, ix *bmp.Index) error {
	d := classDump{
		Name:        sel.String(),
		Title:       sel.Title(),
		Cardinality: ix.Cardinality(),
		Ranges:      []rangeDump{},
		Bitmap:      ix.Bytes(),
	}
	for r := range ix.Ranges() {
		d.Ranges = append(d.Ranges, rangeDump{Lo: int(r.Lo), Hi: int(r.Hi)})
	}
	enc := plist.NewEncoderForFormat(w, plist.XMLFormat)
	enc.Indent("\t")
	return enc.Encode(d)
}
