// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/tsavola/aout2elf/arch"
)

type insn struct {
	addr     uint64
	mnemonic string
	operands string
}

// Text writes a disassembly of at most maxInsns instructions from the start
// of a text segment loaded at addr.  RISC-V code is shown as raw words.
func Text(w io.Writer, text []byte, addr uint64, m arch.Machine, maxInsns int) (err error) {
	var insns []insn

	switch m {
	case arch.Amd64:
		insns, err = disasmAmd64(text, addr, maxInsns)
		if err != nil {
			return
		}

	case arch.RiscV64:
		insns = rawWords(text, addr, maxInsns)

	default:
		return fmt.Errorf("no disassembler for %v", m)
	}

	if len(insns) == 0 {
		return
	}

	lastAddr := insns[len(insns)-1].addr
	addrWidth := (len(fmt.Sprintf("%x", lastAddr)) + 7) &^ 7

	var addrFmt string
	if addr == 0 { // relative
		addrFmt = fmt.Sprintf("%%%dx", addrWidth)
	} else {
		addrFmt = fmt.Sprintf("%%0%dx", addrWidth)
	}

	skipPad := false

	for _, x := range insns {
		switch x.mnemonic {
		case padMnemonic:
			if skipPad {
				continue
			}
			skipPad = true

		default:
			skipPad = false
		}

		fmt.Fprintf(w, addrFmt, x.addr)
		_, err = fmt.Fprint(w, "\t", strings.TrimSpace(x.mnemonic+"\t"+x.operands), "\n")
		if err != nil {
			return
		}
	}

	return
}

func rawWords(text []byte, addr uint64, maxInsns int) (insns []insn) {
	for len(text) >= 4 && len(insns) < maxInsns {
		insns = append(insns, insn{addr, ".word", fmt.Sprintf("0x%08x", binary.LittleEndian.Uint32(text))})
		text = text[4:]
		addr += 4
	}
	return
}
