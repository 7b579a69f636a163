// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"debug/elf"
	"testing"

	"github.com/tsavola/aout2elf/errors"
	"golang.org/x/xerrors"
)

func TestFromMagic(t *testing.T) {
	for magic, expect := range map[uint32]Machine{
		MagicAmd64:   Amd64,
		MagicRiscV64: RiscV64,
	} {
		m, err := FromMagic(magic)
		if err != nil {
			t.Fatal(err)
		}
		if m != expect {
			t.Errorf("%08x: %v", magic, m)
		}
	}
}

func TestFromMagicUnsupported(t *testing.T) {
	_, err := FromMagic(0x00000107) // 68020
	if err == nil {
		t.Fatal("no error")
	}

	var e *errors.UnsupportedArchitecture
	if !xerrors.As(err, &e) {
		t.Fatal(err)
	}
	if e.Magic != 0x00000107 {
		t.Errorf("magic: %08x", e.Magic)
	}
	if e.InputError() == "" {
		t.Error("empty InputError")
	}
}

func TestParameters(t *testing.T) {
	if Amd64.ELFClass() != elf.ELFCLASS32 || Amd64.ELFMachine() != elf.EM_X86_64 || Amd64.VirtualBase() != 0x80000000 {
		t.Error(Amd64)
	}
	if RiscV64.ELFClass() != elf.ELFCLASS64 || RiscV64.ELFMachine() != elf.EM_RISCV || RiscV64.VirtualBase() != 0 {
		t.Error(RiscV64)
	}
	if s := Machine(9).String(); s != "Unknown" {
		t.Error(s)
	}
}
