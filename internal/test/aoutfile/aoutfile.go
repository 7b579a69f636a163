// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aoutfile builds synthetic a.out images for tests.
package aoutfile

import (
	"encoding/binary"
)

type Sym struct {
	Value uint32
	Type  byte
	Name  string
	Path  []uint16 // Encoded instead of Name if not nil.
}

// File description.  Magic is in native (little-endian) order.
type File struct {
	Magic  uint32
	Text   []byte
	Data   []byte
	Bss    uint32
	Entry  uint32
	Syms   []Sym
	SpSize uint32
	PcSize uint32
}

// Symtab encodes symbol records.
func Symtab(syms []Sym) []byte {
	var b []byte

	for _, s := range syms {
		b = append(b, 0, 0, 0, 0)
		b = binary.BigEndian.AppendUint32(b, s.Value)
		b = append(b, s.Type)

		if s.Path != nil {
			b = append(b, 0)
			for _, i := range s.Path {
				b = binary.BigEndian.AppendUint16(b, i)
			}
			b = append(b, 0, 0)
		} else {
			b = append(b, s.Name...)
			b = append(b, 0)
		}
	}

	return b
}

// Bytes of the image.  The header expansion is included if the magic has
// the HDR_MAGIC flag.
func (f *File) Bytes() []byte {
	symtab := Symtab(f.Syms)

	b := binary.LittleEndian.AppendUint32(nil, f.Magic)
	for _, x := range []uint32{
		uint32(len(f.Text)),
		uint32(len(f.Data)),
		f.Bss,
		uint32(len(symtab)),
		f.Entry,
		f.SpSize,
		f.PcSize,
	} {
		b = binary.BigEndian.AppendUint32(b, x)
	}

	if f.Magic&0x00800000 != 0 {
		b = binary.BigEndian.AppendUint64(b, uint64(f.Entry))
	}

	b = append(b, f.Text...)
	b = append(b, f.Data...)
	b = append(b, symtab...)
	b = append(b, make([]byte, f.SpSize+f.PcSize)...)
	return b
}
