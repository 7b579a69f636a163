// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aout

import (
	"github.com/tsavola/aout2elf/arch"
)

// File is a decoded a.out image.  The byte slices refer to the input buffer.
type File struct {
	Header
	Machine  arch.Machine
	Segments Segments

	Text   []byte
	Data   []byte
	Symtab []byte // Raw symbol table.
}

// Parse the header and locate the segments of an a.out image.  Symbols are
// decoded separately by File.Symbols.
func Parse(data []byte) (f *File, err error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return
	}

	m, err := h.Machine()
	if err != nil {
		return
	}

	f = &File{
		Header:   h,
		Machine:  m,
		Segments: h.Segments(),
	}

	if f.Text, err = Slice(data, f.Segments.Text, "text segment"); err != nil {
		return nil, err
	}
	if f.Data, err = Slice(data, f.Segments.Data, "data segment"); err != nil {
		return nil, err
	}
	if f.Symtab, err = Slice(data, f.Segments.Symbols, "symbol table"); err != nil {
		return nil, err
	}

	return
}

// Symbols decodes the symbol table.
func (f *File) Symbols() ([]Symbol, error) {
	return ReadSymbols(f.Symtab)
}
