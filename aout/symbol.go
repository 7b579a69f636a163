// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aout

import (
	"fmt"
	"strings"

	"github.com/tsavola/aout2elf/errors"
	"github.com/tsavola/aout2elf/internal"
	"github.com/tsavola/aout2elf/internal/loader"
	"import.name/pan"
)

const (
	SymbolHeaderSize = 9    // Spacer, value and type.
	MaxNameLen       = 0x80 // Lookahead for the name terminator.
)

// Symbol record.
type Symbol struct {
	Offset  int // Position within the symbol table.
	Value   uint32
	RawType byte
	Name    string
	Path    []uint16 // File name component indexes of z and Z records, if encoded so.
}

func (s *Symbol) Type() SymbolType {
	return Classify(s.RawType)
}

// Len is the size of the encoded record.
func (s *Symbol) Len() int {
	if s.Path != nil {
		return SymbolHeaderSize + 1 + 2*len(s.Path) + 2
	}
	return SymbolHeaderSize + len(s.Name) + 1
}

func (s Symbol) String() string {
	var typ string
	if t := s.Type(); t == Unknown {
		typ = fmt.Sprintf("%02x", s.RawType)
	} else {
		typ = t.String()
	}

	name := s.Name
	if s.Path != nil {
		name = fmt.Sprint(s.Path)
	}

	return fmt.Sprintf("Symbol %08x: %-20s %s", s.Value, typ, name)
}

// ReadSymbols decodes records until the end of the table.
func ReadSymbols(table []byte) (syms []Symbol, err error) {
	if internal.DontPanic() {
		defer func() { err = internal.Error(recover()) }()
	}

	load := loader.New(table, "symbol record")

	for load.Len() > 0 {
		syms = append(syms, readSymbol(load))
	}
	return
}

func readSymbol(load *loader.L) (s Symbol) {
	s.Offset = load.Tell()

	load.Discard(4) // Spacer.
	s.Value = load.Uint32()
	s.RawType = load.Byte()

	// File names are normally encoded as component indexes following a
	// zero byte, but plain strings are accepted too.
	if t := s.RawType & 0x7f; (t == 'z' || t == 'Z') && isPath(load.Peek(3)) {
		s.Path = readPath(load, s.Offset)
		return
	}

	name, ok := load.CString(MaxNameLen)
	if !ok {
		pan.Panic(&errors.SymbolParseError{
			Offset: s.Offset,
			Reason: fmt.Sprintf("name is not terminated within %d bytes", MaxNameLen),
		})
	}
	s.Name = name
	return
}

// isPath checks for the zero byte and room for the terminating index.
func isPath(prefix []byte) bool {
	return len(prefix) == 3 && prefix[0] == 0
}

// readPath decodes a zero byte followed by big-endian 16-bit indexes
// terminated by a zero index.
func readPath(load *loader.L, offset int) []uint16 {
	load.Discard(1)

	path := []uint16{}

	for n := 1; ; n += 2 {
		if n+2 > MaxNameLen {
			pan.Panic(&errors.SymbolParseError{
				Offset: offset,
				Reason: fmt.Sprintf("file name is not terminated within %d bytes", MaxNameLen),
			})
		}

		i := load.Uint16()
		if i == 0 {
			return path
		}
		path = append(path, i)
	}
}

// FileComponents maps the values of f records to their names.
func FileComponents(syms []Symbol) map[uint16]string {
	comps := make(map[uint16]string)
	for _, s := range syms {
		if s.Type() == SourceFileNameComp {
			comps[uint16(s.Value)] = s.Name
		}
	}
	return comps
}

// FileName of a z or Z record, resolved through the components returned by
// FileComponents.
func (s *Symbol) FileName(comps map[uint16]string) string {
	if s.Path == nil {
		return s.Name
	}

	var b strings.Builder

	for i, index := range s.Path {
		name, found := comps[index]
		if !found {
			name = fmt.Sprintf("?%d", index)
		}

		if i > 0 && !strings.HasSuffix(b.String(), "/") {
			b.WriteByte('/')
		}
		b.WriteString(name)
	}

	return b.String()
}
