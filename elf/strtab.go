// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elf

// Section indexes of the emitted image.
const (
	SectionNull = iota
	SectionText
	SectionData
	SectionSymtab
	SectionStrtab
	SectionShstrtab
	NumSections
)

// Section names, in index order.
const (
	nameNull     = ""
	nameText     = ".text"
	nameData     = ".data"
	nameSymtab   = ".symtab"
	nameStrtab   = ".strtab"
	nameShstrtab = ".shstrtab"
)

// Offsets of the section names within SectionNames.
const (
	NameNull     uint32 = 0
	NameText            = NameNull + uint32(len(nameNull)) + 1
	NameData            = NameText + uint32(len(nameText)) + 1
	NameSymtab          = NameData + uint32(len(nameData)) + 1
	NameStrtab          = NameSymtab + uint32(len(nameSymtab)) + 1
	NameShstrtab        = NameStrtab + uint32(len(nameStrtab)) + 1
)

// SectionNames is the contents of the section name string table.
const SectionNames = nameNull + "\x00" +
	nameText + "\x00" +
	nameData + "\x00" +
	nameSymtab + "\x00" +
	nameStrtab + "\x00" +
	nameShstrtab + "\x00"

// StringTable accumulates NUL-terminated names.  Offset 0 is the empty name.
type StringTable struct {
	b []byte
}

func NewStringTable() *StringTable {
	return &StringTable{b: []byte{0}}
}

// Add a name and return its offset.
func (t *StringTable) Add(name string) uint32 {
	offset := uint32(len(t.b))
	t.b = append(t.b, name...)
	t.b = append(t.b, 0)
	return offset
}

func (t *StringTable) Len() int      { return len(t.b) }
func (t *StringTable) Bytes() []byte { return t.b }
