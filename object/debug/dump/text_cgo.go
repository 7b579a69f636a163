// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo
// +build cgo

package dump

import (
	"github.com/bnagy/gapstone"
)

const (
	csArch   = gapstone.CS_ARCH_X86
	csMode   = gapstone.CS_MODE_64
	csSyntax = gapstone.CS_OPT_SYNTAX_ATT

	padMnemonic = "int3"
)

func disasmAmd64(text []byte, addr uint64, maxInsns int) (insns []insn, err error) {
	engine, err := gapstone.New(csArch, csMode)
	if err != nil {
		return
	}
	defer engine.Close()

	err = engine.SetOption(gapstone.CS_OPT_SYNTAX, csSyntax)
	if err != nil {
		return
	}

	list, err := engine.Disasm(text, addr, uint64(maxInsns))
	if err != nil {
		return
	}

	for _, x := range list {
		insns = append(insns, insn{uint64(x.Address), x.Mnemonic, x.OpStr})
	}
	return
}
