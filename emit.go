// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aout2elf

import (
	"debug/elf"
	"fmt"

	elfenc "github.com/tsavola/aout2elf/elf"
	"github.com/tsavola/aout2elf/internal"
	"github.com/tsavola/aout2elf/layout"
	"golang.org/x/xerrors"
	"import.name/pan"
)

const (
	textAlign     = 64
	dataAlign     = 32
	symtabAlign   = 8
	retainedAlign = 4
)

func emit(b Buffer, obj *Object) (image []byte, err error) {
	if internal.DontPanic() {
		defer func() { err = internal.Error(recover()) }()
	}

	var (
		l     = &obj.Layout
		t     = &obj.Tables
		f     = obj.File
		class = l.Class
		base  = b.Len()
	)

	check := func(region string, offset uint64) {
		if n := uint64(b.Len() - base); n != offset {
			pan.Panic(fmt.Errorf("%s at offset %#x instead of %#x", region, n, offset))
		}
	}

	write := func(region string, err error) {
		if err != nil {
			pan.Panic(xerrors.Errorf("%s: %w", region, err))
		}
	}

	// File header

	write("file header", class.WriteHeader(b, &elfenc.Header{
		Type:     elf.ET_EXEC,
		Machine:  l.Machine.ELFMachine(),
		Entry:    l.Entry,
		Phoff:    l.Phoff,
		Shoff:    l.Shoff,
		Phnum:    layout.ProgCount,
		Shnum:    layout.SectionCount,
		Shstrndx: elfenc.SectionShstrtab,
	}))

	// Program headers

	check("program headers", l.Phoff)

	for _, p := range []elfenc.Prog{
		{
			Type:   elf.PT_LOAD,
			Flags:  elf.PF_R | elf.PF_X,
			Off:    l.TextOffset,
			Vaddr:  l.TextAddr,
			Paddr:  l.TextPaddr,
			Filesz: l.TextSize,
			Memsz:  l.TextSize,
			Align:  layout.PageSize,
		},
		{
			Type:   elf.PT_LOAD,
			Flags:  elf.PF_R | elf.PF_W,
			Off:    l.DataOffset,
			Vaddr:  l.DataAddr,
			Paddr:  l.DataPaddr,
			Filesz: l.DataSize,
			Memsz:  l.DataSize + uint64(f.BssSize),
			Align:  layout.PageSize,
		},
		{
			// Retained a.out symbol table.
			Type:   elf.PT_NULL,
			Flags:  elf.PF_R,
			Off:    l.RetainedOffset,
			Filesz: l.RetainedSize,
			Memsz:  l.RetainedSize,
			Align:  retainedAlign,
		},
	} {
		write("program header", class.WriteProg(b, &p))
	}

	// Section headers

	check("section headers", l.Shoff)

	for _, s := range []elfenc.Section{
		{},
		{
			Name:      elfenc.NameText,
			Type:      elf.SHT_PROGBITS,
			Flags:     elf.SHF_ALLOC | elf.SHF_EXECINSTR,
			Addr:      l.TextAddr,
			Off:       l.TextOffset,
			Size:      l.TextSize,
			Link:      elfenc.SectionText,
			Addralign: textAlign,
		},
		{
			Name:      elfenc.NameData,
			Type:      elf.SHT_PROGBITS,
			Flags:     elf.SHF_ALLOC | elf.SHF_WRITE,
			Addr:      l.DataAddr,
			Off:       l.DataOffset,
			Size:      l.DataSize,
			Link:      elfenc.SectionText,
			Addralign: dataAlign,
		},
		{
			Name:      elfenc.NameSymtab,
			Type:      elf.SHT_SYMTAB,
			Off:       t.SymtabOffset,
			Size:      t.SymtabSize,
			Link:      elfenc.SectionStrtab,
			Info:      uint32(len(obj.Symtab.Symbols)), // All symbols are local.
			Addralign: symtabAlign,
			Entsize:   uint64(class.SymbolSize()),
		},
		{
			Name:      elfenc.NameStrtab,
			Type:      elf.SHT_STRTAB,
			Off:       t.StrtabOffset,
			Size:      t.StrtabSize,
			Addralign: 1,
		},
		{
			Name:      elfenc.NameShstrtab,
			Type:      elf.SHT_STRTAB,
			Off:       t.ShstrtabOffset,
			Size:      t.ShstrtabSize,
			Addralign: 1,
		},
	} {
		write("section header", class.WriteSection(b, &s))
	}

	// Pad

	check("pad", l.PadOffset)
	b.Extend(layout.PadSize)

	// Text, data and the a.out symbol table

	check("text", l.TextOffset)
	write("text", writeAll(b, f.Text))
	check("data", l.DataOffset)
	write("data", writeAll(b, f.Data))
	check("retained symbol table", l.RetainedOffset)
	write("retained symbol table", writeAll(b, f.Symtab))

	// Symbol table

	check(".symtab", t.SymtabOffset)
	for i := range obj.Symtab.Symbols {
		write(".symtab", class.WriteSymbol(b, &obj.Symtab.Symbols[i]))
	}

	check(".strtab", t.StrtabOffset)
	write(".strtab", writeAll(b, obj.Symtab.Strings))

	check(".shstrtab", t.ShstrtabOffset)
	write(".shstrtab", writeAll(b, []byte(elfenc.SectionNames)))

	check("end", t.End())

	image = b.Bytes()[base:]
	return
}

func writeAll(b Buffer, data []byte) error {
	_, err := b.Write(data)
	return err
}
