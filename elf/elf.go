// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elf serializes ELF executable structures in either class.
package elf

import (
	"debug/elf"
	"encoding/binary"
	"io"
)

// Encoded structure sizes.
const (
	Header32Size  = 52
	Prog32Size    = 32
	Section32Size = 40
	Symbol32Size  = 16

	Header64Size  = 64
	Prog64Size    = 56
	Section64Size = 64
	Symbol64Size  = 24
)

// Header fields which don't depend on the class.  Entry and structure sizes
// are filled in by the class.
type Header struct {
	Type     elf.Type
	Machine  elf.Machine
	Entry    uint64
	Phoff    uint64
	Shoff    uint64
	Flags    uint32
	Phnum    uint16
	Shnum    uint16
	Shstrndx uint16
}

// Prog is a program header.
type Prog struct {
	Type   elf.ProgType
	Flags  elf.ProgFlag
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// Section is a section header.  Name is an offset into the section name
// string table.
type Section struct {
	Name      uint32
	Type      elf.SectionType
	Flags     elf.SectionFlag
	Addr      uint64
	Off       uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// Symbol is a symbol table entry.  Name is an offset into the symbol name
// string table.
type Symbol struct {
	Name  uint32
	Info  byte
	Other byte
	Shndx uint16
	Value uint64
	Size  uint64
}

// SymbolInfo packs binding and type.
func SymbolInfo(bind elf.SymBind, typ elf.SymType) byte {
	return byte(bind)<<4 | byte(typ)&0xf
}

// Class serializes the structures in a specific word width.  All output is
// little-endian.
type Class interface {
	Class() elf.Class
	HeaderSize() int
	ProgSize() int
	SectionSize() int
	SymbolSize() int

	WriteHeader(w io.Writer, h *Header) error
	WriteProg(w io.Writer, p *Prog) error
	WriteSection(w io.Writer, s *Section) error
	WriteSymbol(w io.Writer, s *Symbol) error
}

// ClassOf returns the serializer for ELFCLASS32 or ELFCLASS64.
func ClassOf(c elf.Class) Class {
	switch c {
	case elf.ELFCLASS32:
		return Class32{}

	case elf.ELFCLASS64:
		return Class64{}

	default:
		panic(c)
	}
}

func ident(c elf.Class) [elf.EI_NIDENT]byte {
	return [elf.EI_NIDENT]byte{
		0:                 0x7f,
		1:                 'E',
		2:                 'L',
		3:                 'F',
		elf.EI_CLASS:      byte(c),
		elf.EI_DATA:       byte(elf.ELFDATA2LSB),
		elf.EI_VERSION:    byte(elf.EV_CURRENT),
		elf.EI_OSABI:      byte(elf.ELFOSABI_NONE),
		elf.EI_ABIVERSION: 0,
	}
}

func write(w io.Writer, x interface{}) error {
	return binary.Write(w, binary.LittleEndian, x)
}

// Class32 is ELFCLASS32.
type Class32 struct{}

func (Class32) Class() elf.Class { return elf.ELFCLASS32 }
func (Class32) HeaderSize() int  { return Header32Size }
func (Class32) ProgSize() int    { return Prog32Size }
func (Class32) SectionSize() int { return Section32Size }
func (Class32) SymbolSize() int  { return Symbol32Size }
func (c Class32) String() string { return c.Class().String() }

func (c Class32) WriteHeader(w io.Writer, h *Header) error {
	return write(w, elf.Header32{
		Ident:     ident(c.Class()),
		Type:      uint16(h.Type),
		Machine:   uint16(h.Machine),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     uint32(h.Entry),
		Phoff:     uint32(h.Phoff),
		Shoff:     uint32(h.Shoff),
		Flags:     h.Flags,
		Ehsize:    Header32Size,
		Phentsize: Prog32Size,
		Phnum:     h.Phnum,
		Shentsize: Section32Size,
		Shnum:     h.Shnum,
		Shstrndx:  h.Shstrndx,
	})
}

func (Class32) WriteProg(w io.Writer, p *Prog) error {
	return write(w, elf.Prog32{
		Type:   uint32(p.Type),
		Off:    uint32(p.Off),
		Vaddr:  uint32(p.Vaddr),
		Paddr:  uint32(p.Paddr),
		Filesz: uint32(p.Filesz),
		Memsz:  uint32(p.Memsz),
		Flags:  uint32(p.Flags),
		Align:  uint32(p.Align),
	})
}

func (Class32) WriteSection(w io.Writer, s *Section) error {
	return write(w, elf.Section32{
		Name:      s.Name,
		Type:      uint32(s.Type),
		Flags:     uint32(s.Flags),
		Addr:      uint32(s.Addr),
		Off:       uint32(s.Off),
		Size:      uint32(s.Size),
		Link:      s.Link,
		Info:      s.Info,
		Addralign: uint32(s.Addralign),
		Entsize:   uint32(s.Entsize),
	})
}

func (Class32) WriteSymbol(w io.Writer, s *Symbol) error {
	return write(w, elf.Sym32{
		Name:  s.Name,
		Value: uint32(s.Value),
		Size:  uint32(s.Size),
		Info:  s.Info,
		Other: s.Other,
		Shndx: s.Shndx,
	})
}

// Class64 is ELFCLASS64.
type Class64 struct{}

func (Class64) Class() elf.Class { return elf.ELFCLASS64 }
func (Class64) HeaderSize() int  { return Header64Size }
func (Class64) ProgSize() int    { return Prog64Size }
func (Class64) SectionSize() int { return Section64Size }
func (Class64) SymbolSize() int  { return Symbol64Size }
func (c Class64) String() string { return c.Class().String() }

func (c Class64) WriteHeader(w io.Writer, h *Header) error {
	return write(w, elf.Header64{
		Ident:     ident(c.Class()),
		Type:      uint16(h.Type),
		Machine:   uint16(h.Machine),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     h.Entry,
		Phoff:     h.Phoff,
		Shoff:     h.Shoff,
		Flags:     h.Flags,
		Ehsize:    Header64Size,
		Phentsize: Prog64Size,
		Phnum:     h.Phnum,
		Shentsize: Section64Size,
		Shnum:     h.Shnum,
		Shstrndx:  h.Shstrndx,
	})
}

func (Class64) WriteProg(w io.Writer, p *Prog) error {
	return write(w, elf.Prog64{
		Type:   uint32(p.Type),
		Flags:  uint32(p.Flags),
		Off:    p.Off,
		Vaddr:  p.Vaddr,
		Paddr:  p.Paddr,
		Filesz: p.Filesz,
		Memsz:  p.Memsz,
		Align:  p.Align,
	})
}

func (Class64) WriteSection(w io.Writer, s *Section) error {
	return write(w, elf.Section64{
		Name:      s.Name,
		Type:      uint32(s.Type),
		Flags:     uint64(s.Flags),
		Addr:      s.Addr,
		Off:       s.Off,
		Size:      s.Size,
		Link:      s.Link,
		Info:      s.Info,
		Addralign: s.Addralign,
		Entsize:   s.Entsize,
	})
}

func (Class64) WriteSymbol(w io.Writer, s *Symbol) error {
	return write(w, elf.Sym64{
		Name:  s.Name,
		Info:  s.Info,
		Other: s.Other,
		Shndx: s.Shndx,
		Value: s.Value,
		Size:  s.Size,
	})
}
