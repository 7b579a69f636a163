// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump writes human-readable descriptions of a.out and ELF files.
package dump

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/tsavola/aout2elf/aout"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Summary of an a.out file's architecture and segments.  Previews of the
// segment contents are included if preview is set.
func Summary(w io.Writer, f *aout.File, preview bool) (err error) {
	fmt.Fprintf(w, "Architecture: %v\n", f.Machine)
	fmt.Fprintf(w, "Entry point:  %08x\n", f.EntryPoint)
	fmt.Fprintln(w)

	for _, s := range []struct {
		name string
		r    aout.Range
		data []byte
	}{
		{"Code:   ", f.Segments.Text, f.Text},
		{"Data:   ", f.Segments.Data, f.Data},
		{"Symbols:", f.Segments.Symbols, f.Symtab},
	} {
		var x string
		if preview {
			x = " " + Preview(s.data)
		}
		_, err = fmt.Fprintf(w, "%s %08x bytes @ %08x%s\n", s.name, s.r.Size, s.r.Offset, x)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(w)
	return
}

// Header dumps the decoded header structure.
func Header(w io.Writer, h *aout.Header) {
	spewConfig.Fdump(w, h)
}

// Symbols lists symbol records with their offsets within the symbol table.
// File names of z and Z records are resolved.
func Symbols(w io.Writer, syms []aout.Symbol) (err error) {
	comps := aout.FileComponents(syms)

	for i := range syms {
		s := &syms[i]

		switch {
		case s.Type() == aout.Unknown:
			_, err = fmt.Fprintf(w, " %08x: Unknown symbol %02x %08x\n", s.Offset, s.RawType, s.Value)

		case s.Path != nil:
			_, err = fmt.Fprintf(w, " %08x: %v (%s)\n", s.Offset, s, s.FileName(comps))

		default:
			_, err = fmt.Fprintf(w, " %08x: %v\n", s.Offset, s)
		}
		if err != nil {
			return
		}
	}

	return
}
