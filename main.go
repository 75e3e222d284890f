// Copyright 2018 The mkcert Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartable writes a Markdown table of the characters that belong
// to a Unicode character class.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jlieske/chartable/bmp"
	"github.com/jlieske/chartable/charclass"
	"github.com/jlieske/chartable/table"
)

const (
	exitFailure = 1
	exitUsage   = 2
	exitUnknown = 3
)

const (
	formatMarkdown = "markdown"
	formatPlist    = "plist"
)

const usage = `
Usage:

	$ chartable letters >table.md
	Generate a Markdown file with a table listing the characters
	in the named character set.

	$ chartable -o symbols.md symbols
	Write the table to "symbols.md".

	$ chartable -format plist operators
	Dump the character set bitmap as an XML property list.

Allowed values for the character set name:
	letters      Unicode letters and marks
	punctuation  Unicode punctuation
	symbols      Unicode symbols
	sympunct     symbols and punctuation
	operators    characters that can begin a Swift operator

Only the Basic Multilingual Plane (U+0000 to U+FFFF) is listed.
Change the default output format by setting $CHARTABLE_FORMAT.
`

var errUsage = errors.New("invalid usage")

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type chartable struct {
	format, output string

	stdout io.Writer
	log    *log.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	fs := flag.NewFlagSet("chartable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { logger.Print(usage) }
	var outputFlag = fs.String("o", "", "write the output to `path` instead of standard output")
	var formatFlag = fs.String("format", defaultFormat(), "output `format`, markdown or plist")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	err := (&chartable{
		format: *formatFlag, output: *outputFlag,
		stdout: stdout, log: logger,
	}).Run(fs.Args())

	var unknown *charclass.UnknownClassError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, charclass.ErrMissingSelector):
		logger.Print(usage)
		return exitUsage
	case errors.As(err, &unknown):
		logger.Printf("ERROR: %s", err)
		logger.Print(usage)
		return exitUnknown
	case errors.Is(err, errUsage):
		logger.Printf("ERROR: %s", err)
		logger.Print(usage)
		return exitUsage
	default:
		logger.Printf("ERROR: %s", err)
		return exitFailure
	}
}

func defaultFormat() string {
	if env := os.Getenv("CHARTABLE_FORMAT"); env != "" {
		return env
	}
	return formatMarkdown
}

// Run validates everything before writing, so argument errors never
// produce partial output.
func (c *chartable) Run(args []string) error {
	if len(args) == 0 {
		return charclass.ErrMissingSelector
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one character set name, got %d arguments", errUsage, len(args))
	}
	sel, err := charclass.ParseSelector(args[0])
	if err != nil {
		return err
	}
	if c.format != formatMarkdown && c.format != formatPlist {
		return fmt.Errorf("%w: unknown output format %q", errUsage, c.format)
	}
	if c.output != "" {
		if dir := filepath.Dir(c.output); !isWritable(dir) {
			return fmt.Errorf("output directory %q is not writable", dir)
		}
	}

	class, err := sel.Class()
	if err != nil {
		return err
	}
	ix := bmp.Build(class)

	if c.output == "" {
		return c.write(c.stdout, sel, ix)
	}
	f, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("failed to create the output file: %w", err)
	}
	if err := c.write(f, sel, ix); err != nil {
		f.Close()
		os.Remove(c.output)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to save the output file: %w", err)
	}
	c.log.Printf("Wrote %d %s characters to %q", ix.Cardinality(), sel, c.output)
	return nil
}

func (c *chartable) write(w io.Writer, sel charclass.Selector, ix *bmp.Index) error {
	var err error
	switch c.format {
	case formatPlist:
		err = writePlist(w, sel, ix)
	default:
		err = table.Render(w, ix, sel.Title())
	}
	if err != nil {
		return fmt.Errorf("failed to write the %s output: %w", c.format, err)
	}
	return nil
}
