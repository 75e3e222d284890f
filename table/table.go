// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table renders a bmp.Index as a Markdown heading followed by an
// HTML table, one row per 16 code points that have at least one member.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jlieske/chartable/bmp"
)

const header = `<table><thead><tr><th></th>
<th>0</th><th>1</th><th>2</th><th>3</th>
<th>4</th><th>5</th><th>6</th><th>7</th>
<th>8</th><th>9</th><th>A</th><th>B</th>
<th>C</th><th>D</th><th>E</th><th>F</th>
</tr></thead><tbody>
`

const footer = "</tbody></table>\n"

// Only the markup metacharacters are escaped. Control and bidi characters
// are written as is.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape returns the cell text for code point r.
func Escape(r rune) string {
	return escaper.Replace(string(r))
}

// Render writes the table for ix under the heading "# title".
// Rows are streamed in code point order as they are produced.
func Render(w io.Writer, ix *bmp.Index, title string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", title)
	bw.WriteString(header)
	for i, bits := range ix.Rows() {
		base := rune(i * 16)
		fmt.Fprintf(bw, "<tr><th>%X</th>\n", base)
		for col := rune(0); col < 16; col++ {
			if bits&(1<<col) == 0 {
				bw.WriteString("<td></td>")
				continue
			}
			bw.WriteString("<td>")
			escaper.WriteString(bw, string(base+col))
			bw.WriteString("</td>")
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString(footer)
	return bw.Flush()
}
