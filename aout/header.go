// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aout decodes Plan 9 a.out executables.
//
// See https://9p.io/magic/man2html/6/a.out
package aout

import (
	"encoding/binary"

	"github.com/tsavola/aout2elf/arch"
	"github.com/tsavola/aout2elf/errors"
	"github.com/tsavola/aout2elf/internal"
	"github.com/tsavola/aout2elf/internal/loader"
)

const (
	HeaderSize    = 32
	ExpansionSize = 8 // 64-bit entry point following the header.
)

// HDR_MAGIC in the native-endian reading of the magic.
const expandedFlag = 0x00800000

// Header of an a.out file.  All fields except Magic are stored big-endian.
type Header struct {
	Magic           uint32
	TextSize        uint32 // Binary code segment.
	DataSize        uint32 // Initialized data.
	BssSize         uint32 // Uninitialized data.
	SymbolTableSize uint32
	EntryPoint      uint32
	SpSize          uint32 // pc/sp offset table.
	PcSize          uint32 // pc/line number table.

	Expanded bool   // The magic has the HDR_MAGIC flag.
	Entry64  uint64 // Valid if Expanded.
}

// DecodeHeader from the prefix of an a.out image.  The magic is checked
// before the length of the expansion.
func DecodeHeader(data []byte) (h Header, err error) {
	if len(data) < HeaderSize {
		err = errors.Formatf("header needs %d bytes, file has %d", HeaderSize, len(data))
		return
	}

	h.Magic = binary.LittleEndian.Uint32(data)
	h.Expanded = h.Magic&expandedFlag != 0

	if _, err = arch.FromMagic(h.Magic); err != nil {
		return
	}

	if len(data) < h.Size() {
		err = errors.Formatf("expanded header needs %d bytes, file has %d", h.Size(), len(data))
		return
	}

	if internal.DontPanic() {
		defer func() { err = internal.Error(recover()) }()
	}

	load := loader.New(data, "header")
	load.Discard(4)
	h.TextSize = load.Uint32()
	h.DataSize = load.Uint32()
	h.BssSize = load.Uint32()
	h.SymbolTableSize = load.Uint32()
	h.EntryPoint = load.Uint32()
	h.SpSize = load.Uint32()
	h.PcSize = load.Uint32()

	if h.Expanded {
		h.Entry64 = load.Uint64()
	}

	return
}

// Size of the header including the optional expansion.
func (h *Header) Size() int {
	if h.Expanded {
		return HeaderSize + ExpansionSize
	}
	return HeaderSize
}

// Machine which the magic number identifies.
func (h *Header) Machine() (arch.Machine, error) {
	return arch.FromMagic(h.Magic)
}

// Range of bytes within the a.out file.
type Range struct {
	Offset uint64
	Size   uint64
}

func (r Range) End() uint64 {
	return r.Offset + r.Size
}

// Segments of an a.out file, in file order.
type Segments struct {
	Text    Range
	Data    Range
	Symbols Range
	SpTable Range
	PcTable Range
}

// Segments computes the file ranges from the header sizes.
func (h *Header) Segments() (s Segments) {
	s.Text = Range{uint64(h.Size()), uint64(h.TextSize)}
	s.Data = Range{s.Text.End(), uint64(h.DataSize)}
	s.Symbols = Range{s.Data.End(), uint64(h.SymbolTableSize)}
	s.SpTable = Range{s.Symbols.End(), uint64(h.SpSize)}
	s.PcTable = Range{s.SpTable.End(), uint64(h.PcSize)}
	return
}

// Slice a range out of the file contents.  The error is
// errors.TruncatedInput if the range extends past the end.
func Slice(data []byte, r Range, region string) ([]byte, error) {
	n := uint64(len(data))
	if r.Offset > n || r.Size > n-r.Offset {
		var avail uint64
		if r.Offset < n {
			avail = n - r.Offset
		}
		return nil, errors.Truncated(region, r.Offset, r.Size, avail)
	}
	return data[r.Offset:r.End()], nil
}
