// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes file offsets and addresses of the ELF image.
//
// File layout:
//
//	file header
//	program headers (text, data, retained symbol table)
//	section headers (null, .text, .data, .symtab, .strtab, .shstrtab)
//	pad
//	text, data and a.out symbol table, copied as is
//	.symtab
//	.strtab
//	.shstrtab
package layout

import (
	"github.com/tsavola/aout2elf/arch"
	"github.com/tsavola/aout2elf/elf"
	"github.com/tsavola/aout2elf/errors"
)

const (
	ProgCount    = 3
	SectionCount = elf.NumSections

	PadBasicSize = 4
	PadExtraSize = 8
	PadSize      = PadBasicSize + PadExtraSize

	PageSize = 4096
)

// Layout of an ELF image.  Addresses include the virtual base; physical
// addresses don't.
type Layout struct {
	Machine arch.Machine
	Class   elf.Class
	Entry   uint64

	Phoff      uint64
	Shoff      uint64
	PadOffset  uint64
	MainOffset uint64 // Start of the carried bytes.

	TextOffset uint64
	TextSize   uint64
	TextAddr   uint64
	TextPaddr  uint64

	DataOffset uint64
	DataSize   uint64
	DataAddr   uint64
	DataPaddr  uint64

	RetainedOffset uint64 // a.out symbol table.
	RetainedSize   uint64

	SymtabOffset uint64 // Follows all carried bytes.
}

// Plan the layout.  The sizes must have been validated against the input.
func Plan(m arch.Machine, textSize, dataSize, symSize, entry uint32) (l Layout) {
	l.Machine = m
	l.Class = elf.ClassOf(m.ELFClass())
	l.Entry = uint64(entry)

	var (
		headerSize  = uint64(l.Class.HeaderSize())
		progSize    = uint64(l.Class.ProgSize())
		sectionSize = uint64(l.Class.SectionSize())
	)

	l.Phoff = headerSize
	l.Shoff = l.Phoff + ProgCount*progSize
	l.PadOffset = l.Shoff + SectionCount*sectionSize
	l.MainOffset = l.PadOffset + PadSize

	base := m.VirtualBase()

	l.TextOffset = l.MainOffset
	l.TextSize = uint64(textSize)
	l.TextPaddr = uint64(entry)
	l.TextAddr = base + l.TextPaddr

	l.DataOffset = l.TextOffset + l.TextSize
	l.DataSize = uint64(dataSize)
	l.DataPaddr = uint64(entry) + roundSize(uint64(textSize), PageSize)
	l.DataAddr = base + l.DataPaddr

	l.RetainedOffset = l.DataOffset + l.DataSize
	l.RetainedSize = uint64(symSize)

	l.SymtabOffset = l.RetainedOffset + l.RetainedSize
	return
}

// CarriedSize is the number of bytes copied from the input.
func (l *Layout) CarriedSize() uint64 {
	return l.TextSize + l.DataSize + l.RetainedSize
}

// TextEnd is the address (without virtual base) following the text segment.
func (l *Layout) TextEnd() uint64 {
	return l.TextPaddr + l.TextSize
}

// Tables locates the string and symbol tables.
type Tables struct {
	SymtabOffset   uint64
	SymtabSize     uint64
	StrtabOffset   uint64
	StrtabSize     uint64
	ShstrtabOffset uint64
	ShstrtabSize   uint64
}

// Tables places the tables once their sizes are known.
func (l *Layout) Tables(numSymbols, strtabSize int) (t Tables) {
	t.SymtabOffset = l.SymtabOffset
	t.SymtabSize = uint64(numSymbols * l.Class.SymbolSize())
	t.StrtabOffset = t.SymtabOffset + t.SymtabSize
	t.StrtabSize = uint64(strtabSize)
	t.ShstrtabOffset = t.StrtabOffset + t.StrtabSize
	t.ShstrtabSize = uint64(len(elf.SectionNames))
	return
}

// End of the image.
func (t *Tables) End() uint64 {
	return t.ShstrtabOffset + t.ShstrtabSize
}

// Check that the addresses and offsets are representable in the ELF class.
// The error is errors.FormatError if they aren't.
func (l *Layout) Check(t *Tables, bssSize uint32) error {
	if _, ok := l.Class.(elf.Class32); !ok {
		return nil
	}

	for _, r := range []struct {
		name string
		addr uint64
		size uint64
	}{
		{"text segment", l.TextAddr, l.TextSize},
		{"data segment", l.DataAddr, l.DataSize + uint64(bssSize)},
		{"image", 0, t.End()},
	} {
		if r.addr > limit32 || r.addr+r.size > limit32+1 {
			return errors.Formatf("%s %#x+%#x exceeds %v", r.name, r.addr, r.size, l.Class)
		}
	}

	return nil
}

const limit32 = 1<<32 - 1

func roundSize(value, alignment uint64) uint64 {
	return (value + alignment - 1) &^ (alignment - 1)
}
