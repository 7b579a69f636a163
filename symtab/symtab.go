// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symtab translates a.out symbols into an ELF symbol table.
//
// Only text and static text symbols are translated, as local functions.  A
// symbol's size is the distance to the next symbol, so the highest one has
// no size and is left out unless Options.SizeLastSymbol is set.
package symtab

import (
	"debug/elf"
	"sort"

	"github.com/tsavola/aout2elf/aout"
	elfenc "github.com/tsavola/aout2elf/elf"
)

// Options for Translate.  The zero value matches the conventional output.
type Options struct {
	// SizeLastSymbol emits the highest text symbol too, sized up to TextEnd.
	SizeLastSymbol bool
	TextEnd        uint64 // End address of the text segment.
}

// Table is an ELF symbol table and its name string table.
type Table struct {
	Symbols []elfenc.Symbol // The first entry is the null symbol.
	Strings []byte
}

// Translate a decoded symbol list.
func Translate(syms []aout.Symbol, opts Options) Table {
	funcs := TextSymbols(syms)

	var (
		strtab  = elfenc.NewStringTable()
		entries = []elfenc.Symbol{{}}
	)

	add := func(s *aout.Symbol, size uint64) {
		entries = append(entries, elfenc.Symbol{
			Name:  strtab.Add(s.Name),
			Info:  elfenc.SymbolInfo(elf.STB_LOCAL, elf.STT_FUNC),
			Shndx: elfenc.SectionText,
			Value: uint64(s.Value),
			Size:  size,
		})
	}

	for i := 0; i+1 < len(funcs); i++ {
		add(&funcs[i], uint64(funcs[i+1].Value-funcs[i].Value))
	}

	if opts.SizeLastSymbol && len(funcs) > 0 {
		if last := &funcs[len(funcs)-1]; uint64(last.Value) < opts.TextEnd {
			add(last, opts.TextEnd-uint64(last.Value))
		}
	}

	return Table{
		Symbols: entries,
		Strings: strtab.Bytes(),
	}
}

// TextSymbols filters text and static text symbols and sorts them by
// address.  Symbols with equal addresses keep their table order.
func TextSymbols(syms []aout.Symbol) []aout.Symbol {
	var funcs []aout.Symbol
	for _, s := range syms {
		if s.Type().IsText() {
			funcs = append(funcs, s)
		}
	}

	sort.SliceStable(funcs, func(i, j int) bool {
		return funcs[i].Value < funcs[j].Value
	})
	return funcs
}
