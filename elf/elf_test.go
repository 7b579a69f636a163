// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elf

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizes(t *testing.T) {
	assert.Equal(t, binary.Size(elf.Header32{}), Header32Size)
	assert.Equal(t, binary.Size(elf.Prog32{}), Prog32Size)
	assert.Equal(t, binary.Size(elf.Section32{}), Section32Size)
	assert.Equal(t, binary.Size(elf.Sym32{}), Symbol32Size)

	assert.Equal(t, binary.Size(elf.Header64{}), Header64Size)
	assert.Equal(t, binary.Size(elf.Prog64{}), Prog64Size)
	assert.Equal(t, binary.Size(elf.Section64{}), Section64Size)
	assert.Equal(t, binary.Size(elf.Sym64{}), Symbol64Size)
}

func TestClassSizes(t *testing.T) {
	for _, c := range []Class{ClassOf(elf.ELFCLASS32), ClassOf(elf.ELFCLASS64)} {
		var b bytes.Buffer

		require.NoError(t, c.WriteHeader(&b, &Header{}))
		assert.Equal(t, c.HeaderSize(), b.Len(), c)
		b.Reset()

		require.NoError(t, c.WriteProg(&b, &Prog{}))
		assert.Equal(t, c.ProgSize(), b.Len(), c)
		b.Reset()

		require.NoError(t, c.WriteSection(&b, &Section{}))
		assert.Equal(t, c.SectionSize(), b.Len(), c)
		b.Reset()

		require.NoError(t, c.WriteSymbol(&b, &Symbol{}))
		assert.Equal(t, c.SymbolSize(), b.Len(), c)
	}
}

func TestClassOfPanics(t *testing.T) {
	assert.Panics(t, func() { ClassOf(elf.ELFCLASSNONE) })
}

func TestWriteHeader(t *testing.T) {
	for _, c := range []Class{Class32{}, Class64{}} {
		var b bytes.Buffer

		require.NoError(t, c.WriteHeader(&b, &Header{
			Type:     elf.ET_EXEC,
			Machine:  elf.EM_X86_64,
			Entry:    0x200028,
			Phoff:    uint64(c.HeaderSize()),
			Phnum:    3,
			Shnum:    NumSections,
			Shstrndx: SectionShstrtab,
		}))

		data := b.Bytes()
		assert.Equal(t, []byte("\x7fELF"), data[:4])
		assert.Equal(t, byte(c.Class()), data[elf.EI_CLASS])
		assert.Equal(t, byte(elf.ELFDATA2LSB), data[elf.EI_DATA])
		assert.Equal(t, byte(elf.EV_CURRENT), data[elf.EI_VERSION])
		assert.Equal(t, byte(elf.ELFOSABI_NONE), data[elf.EI_OSABI])

		assert.Equal(t, uint16(elf.ET_EXEC), binary.LittleEndian.Uint16(data[16:]))
		assert.Equal(t, uint16(elf.EM_X86_64), binary.LittleEndian.Uint16(data[18:]))
		assert.Equal(t, uint32(elf.EV_CURRENT), binary.LittleEndian.Uint32(data[20:]))

		if c.Class() == elf.ELFCLASS32 {
			assert.Equal(t, uint32(0x200028), binary.LittleEndian.Uint32(data[24:]))
			assert.Equal(t, uint16(Header32Size), binary.LittleEndian.Uint16(data[40:]))
			assert.Equal(t, uint16(SectionShstrtab), binary.LittleEndian.Uint16(data[50:]))
		} else {
			assert.Equal(t, uint64(0x200028), binary.LittleEndian.Uint64(data[24:]))
			assert.Equal(t, uint16(Header64Size), binary.LittleEndian.Uint16(data[52:]))
			assert.Equal(t, uint16(SectionShstrtab), binary.LittleEndian.Uint16(data[62:]))
		}
	}
}

func TestSymbolInfo(t *testing.T) {
	info := SymbolInfo(elf.STB_LOCAL, elf.STT_FUNC)
	assert.Equal(t, byte(2), info)
	assert.Equal(t, elf.STB_LOCAL, elf.ST_BIND(info))
	assert.Equal(t, elf.STT_FUNC, elf.ST_TYPE(info))

	info = SymbolInfo(elf.STB_GLOBAL, elf.STT_OBJECT)
	assert.Equal(t, byte(0x11), info)
}

func TestSectionNames(t *testing.T) {
	assert.Equal(t, "\x00.text\x00.data\x00.symtab\x00.strtab\x00.shstrtab\x00", SectionNames)
	assert.Len(t, SectionNames, 39)

	for offset, name := range map[uint32]string{
		NameNull:     "",
		NameText:     ".text",
		NameData:     ".data",
		NameSymtab:   ".symtab",
		NameStrtab:   ".strtab",
		NameShstrtab: ".shstrtab",
	} {
		s := SectionNames[offset:]
		assert.Equal(t, name, s[:strings.IndexByte(s, 0)])
	}

	assert.Equal(t, []uint32{0, 1, 7, 13, 21, 29}, []uint32{NameNull, NameText, NameData, NameSymtab, NameStrtab, NameShstrtab})
}

func TestStringTable(t *testing.T) {
	st := NewStringTable()
	assert.Equal(t, 1, st.Len())

	assert.Equal(t, uint32(1), st.Add("main"))
	assert.Equal(t, uint32(6), st.Add("helper"))
	assert.Equal(t, uint32(13), st.Add(""))

	assert.Equal(t, []byte("\x00main\x00helper\x00\x00"), st.Bytes())
	assert.Equal(t, 14, st.Len())
}
