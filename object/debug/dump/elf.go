// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"debug/elf"
	"fmt"
	"io"
)

// IsELF checks the identification magic.
func IsELF(data []byte) bool {
	return bytes.HasPrefix(data, []byte(elf.ELFMAG))
}

// ELF describes an ELF file: the file header, program headers, section
// headers and function symbols.
func ELF(w io.Writer, data []byte) (err error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintln(w, "This is an ELF:")
	spewConfig.Fdump(w, f.FileHeader)

	fmt.Fprintln(w, "Program headers:")
	for _, p := range f.Progs {
		fmt.Fprintf(w, "  %-10v %-12v off %08x vaddr %08x paddr %08x filesz %08x memsz %08x align %x\n", p.Type, p.Flags, p.Off, p.Vaddr, p.Paddr, p.Filesz, p.Memsz, p.Align)
	}

	fmt.Fprintln(w, "Section headers:")
	for i, s := range f.Sections {
		fmt.Fprintf(w, "  %2d %-10s %-14v off %08x addr %08x size %08x link %d info %d align %d\n", i, s.Name, s.Type, s.Offset, s.Addr, s.Size, s.Link, s.Info, s.Addralign)
	}

	syms, symErr := f.Symbols()
	if symErr != nil {
		_, err = fmt.Fprintf(w, "Symbols: %v\n", symErr)
		return
	}

	fmt.Fprintln(w, "Symbols:")
	for _, s := range syms {
		fmt.Fprintf(w, "  %08x %6x %-8v %s\n", s.Value, s.Size, elf.ST_TYPE(s.Info), s.Name)
	}

	_, err = fmt.Fprintln(w)
	return
}
