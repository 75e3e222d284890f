// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/jlieske/chartable/bmp"
	"github.com/jlieske/chartable/charclass"
)

func runChartable(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestChartable_Operators(t *testing.T) {
	code, out, stderr := runChartable(t, "operators")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stderr)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "# Swift Operator Head", lines[0])
	assert.Contains(t, out, "<tr><th>2020</th>\n<td>†</td><td>‡</td>")
	assert.Contains(t, out, "<tr><th>2010</th>\n<td></td><td></td><td></td><td></td><td></td><td></td><td>‖</td><td>‗</td><td></td><td></td>")
	assert.True(t, strings.HasSuffix(out, "</tbody></table>\n"))
}

func TestChartable_AllSelectors(t *testing.T) {
	for _, sel := range charclass.Selectors {
		t.Run(sel.String(), func(t *testing.T) {
			code, out, _ := runChartable(t, sel.String())
			require.Equal(t, 0, code)
			assert.True(t, strings.HasPrefix(out, "# "+sel.Title()+"\n<table>"))
		})
	}
}

func TestChartable_MissingSelector(t *testing.T) {
	code, out, stderr := runChartable(t)
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Usage:")
}

func TestChartable_UnknownSelector(t *testing.T) {
	code, out, stderr := runChartable(t, "foo")
	assert.Equal(t, exitUnknown, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "ERROR: unknown character set name: foo")
	assert.Contains(t, stderr, "Usage:")
}

func TestChartable_UsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"letters", "symbols"},
		{"-format", "json", "letters"},
		{"-nope", "letters"},
	} {
		code, out, stderr := runChartable(t, args...)
		assert.Equal(t, exitUsage, code, args)
		assert.Empty(t, out, args)
		assert.NotEmpty(t, stderr, args)
	}

	code, out, _ := runChartable(t, "-h")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestChartable_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operators.md")
	code, out, stderr := runChartable(t, "-o", path, "operators")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "operators.md")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, want, _ := runChartable(t, "operators")
	assert.Equal(t, want, string(data))
}

func TestChartable_OutputNotWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "table.md")
	code, out, stderr := runChartable(t, "-o", path, "letters")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "is not writable")
	assert.NoFileExists(t, path)
}

func TestChartable_Plist(t *testing.T) {
	code, out, stderr := runChartable(t, "-format", "plist", "operators")
	require.Equal(t, 0, code, stderr)

	var d classDump
	_, err := plist.Unmarshal([]byte(out), &d)
	require.NoError(t, err)

	op := charclass.OperatorHead()
	assert.Equal(t, "operators", d.Name)
	assert.Equal(t, "Swift Operator Head", d.Title)
	assert.Equal(t, op.Len(), d.Cardinality)
	assert.Equal(t, bmp.Build(op).Bytes(), d.Bitmap)
	require.Len(t, d.Ranges, len(op.Ranges()))
	for i, r := range op.Ranges() {
		assert.Equal(t, rangeDump{Lo: int(r.Lo), Hi: int(r.Hi)}, d.Ranges[i])
	}
}

func TestChartable_FormatFromEnv(t *testing.T) {
	t.Setenv("CHARTABLE_FORMAT", "plist")
	code, out, _ := runChartable(t, "punctuation")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "<?xml"))

	code, out, _ = runChartable(t, "-format", "markdown", "punctuation")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "# Punctuation\n"))
}
