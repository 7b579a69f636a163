// Copyright (c) 2015 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"bytes"
	"encoding/binary"

	"github.com/tsavola/aout2elf/errors"
	"import.name/pan"
)

// L provides panicking big-endian decoding methods over an in-memory byte
// slice.  Reads past the end panic with errors.TruncatedInput.
type L struct {
	Data   []byte
	Region string // For error messages.
	Pos    int
}

func New(data []byte, region string) *L {
	return &L{Data: data, Region: region}
}

// Tell the current position.
func (load *L) Tell() int {
	return load.Pos
}

// Len of the unread remainder.
func (load *L) Len() int {
	return len(load.Data) - load.Pos
}

// Peek at most n bytes without advancing.
func (load *L) Peek(n int) []byte {
	if n > load.Len() {
		n = load.Len()
	}
	return load.Data[load.Pos : load.Pos+n]
}

// Bytes returns the next n bytes as a subslice of the input.
func (load *L) Bytes(n int) []byte {
	load.need(n)
	b := load.Data[load.Pos : load.Pos+n]
	load.Pos += n
	return b
}

func (load *L) Discard(n int) {
	load.Bytes(n)
}

func (load *L) Byte() byte {
	return load.Bytes(1)[0]
}

func (load *L) Uint16() uint16 {
	return binary.BigEndian.Uint16(load.Bytes(2))
}

func (load *L) Uint32() uint32 {
	return binary.BigEndian.Uint32(load.Bytes(4))
}

func (load *L) Uint64() uint64 {
	return binary.BigEndian.Uint64(load.Bytes(8))
}

// CString reads a NUL-terminated string.  The terminator must appear within
// maxLen bytes; the second return value is false if it doesn't, and the
// position is left unchanged in that case.
func (load *L) CString(maxLen int) (s string, ok bool) {
	window := load.Peek(maxLen)
	i := bytes.IndexByte(window, 0)
	if i < 0 {
		return "", false
	}
	s = string(window[:i])
	load.Pos += i + 1
	return s, true
}

func (load *L) need(n int) {
	if n < 0 || n > load.Len() {
		pan.Panic(errors.Truncated(load.Region, uint64(load.Pos), uint64(n), uint64(load.Len())))
	}
}
