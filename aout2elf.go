// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aout2elf

import (
	"io"

	"github.com/tsavola/aout2elf/aout"
	"github.com/tsavola/aout2elf/buffer"
	"github.com/tsavola/aout2elf/layout"
	"github.com/tsavola/aout2elf/symtab"
	"golang.org/x/xerrors"
)

// Buffer receives the ELF image.  Extend appends n zero bytes.
type Buffer interface {
	io.Writer
	Bytes() []byte
	Len() int
	Extend(n int) []byte
}

// Config for a conversion.
type Config struct {
	SizeLastSymbol bool   // Don't leave out the highest text symbol.
	MaxImageSize   int    // Limits the default buffer; 0 means no limit.
	Image          Buffer // Defaults to dynamically sized buffer.
}

// Object is a converted program.  The fields are in order of appearance
// during conversion.
type Object struct {
	File    *aout.File    // Input header and segments.
	Symbols []aout.Symbol // Decoded input symbols.
	Symtab  symtab.Table  // Translated symbols.
	Layout  layout.Layout // Offsets and addresses.
	Tables  layout.Tables // Offsets of the tables.
	Image   []byte        // Complete ELF file.
}

// Convert an a.out image to an ELF image.  The Object is constructed
// incrementally so that populated fields may be inspected on error, but
// Image is set only on success.
func Convert(config *Config, data []byte) (obj *Object, err error) {
	if config == nil {
		config = new(Config)
	}

	obj = new(Object)

	obj.File, err = aout.Parse(data)
	if err != nil {
		return
	}
	f := obj.File

	obj.Symbols, err = f.Symbols()
	if err != nil {
		return
	}

	obj.Layout = layout.Plan(f.Machine, f.TextSize, f.DataSize, f.SymbolTableSize, f.EntryPoint)

	obj.Symtab = symtab.Translate(obj.Symbols, symtab.Options{
		SizeLastSymbol: config.SizeLastSymbol,
		TextEnd:        obj.Layout.TextEnd(),
	})

	obj.Tables = obj.Layout.Tables(len(obj.Symtab.Symbols), len(obj.Symtab.Strings))

	if err = obj.Layout.Check(&obj.Tables, f.BssSize); err != nil {
		return
	}

	b := config.Image
	if b == nil {
		if config.MaxImageSize > 0 {
			b = buffer.NewLimited(nil, config.MaxImageSize)
		} else {
			b = buffer.NewDynamic(make([]byte, 0, int(obj.Tables.End())))
		}
	}

	image, err := emit(b, obj)
	if err != nil {
		err = xerrors.Errorf("emitting ELF image: %w", err)
		return
	}

	obj.Image = image
	return
}
