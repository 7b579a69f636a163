// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo
// +build !cgo

package dump

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

const padMnemonic = "int3"

func disasmAmd64(text []byte, addr uint64, maxInsns int) (insns []insn, err error) {
	for len(text) > 0 && len(insns) < maxInsns {
		inst, decodeErr := x86asm.Decode(text, 64)
		if decodeErr != nil {
			insns = append(insns, insn{addr, "(bad)", fmt.Sprintf("%02x", text[0])})
			text = text[1:]
			addr++
			continue
		}

		mnemonic, operands := splitInsn(x86asm.GNUSyntax(inst, addr, nil))
		insns = append(insns, insn{addr, mnemonic, operands})
		text = text[inst.Len:]
		addr += uint64(inst.Len)
	}
	return
}

func splitInsn(s string) (mnemonic, operands string) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
