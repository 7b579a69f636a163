// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch maps Plan 9 a.out magic numbers to target machines and their
// ELF parameters.
package arch

import (
	"debug/elf"

	"github.com/tsavola/aout2elf/errors"
)

// Magic numbers as read from the first four bytes of the file in native
// (little-endian) order.  Plan 9 stores them big-endian, so for example the
// amd64 magic 0x00008a97 appears here byte-swapped.
const (
	MagicAmd64   uint32 = 0x978a0000
	MagicRiscV64 uint32 = 0x178e0000
)

// Machine is a supported conversion target.
type Machine int

const (
	Amd64 Machine = iota
	RiscV64
)

var machineNames = [...]string{
	Amd64:   "Amd64",
	RiscV64: "RiscV64",
}

func (m Machine) String() string {
	if int(m) < len(machineNames) {
		return machineNames[m]
	}
	return "Unknown"
}

// FromMagic looks up the target machine.  Unknown magic yields
// errors.UnsupportedArchitecture.
func FromMagic(magic uint32) (Machine, error) {
	switch magic {
	case MagicAmd64:
		return Amd64, nil

	case MagicRiscV64:
		return RiscV64, nil

	default:
		return 0, &errors.UnsupportedArchitecture{Magic: magic}
	}
}

// Is64 reports whether the ELF output uses the 64-bit class.  amd64 images
// are emitted as 32-bit ELF files.
func (m Machine) Is64() bool {
	return m == RiscV64
}

// ELFClass of the output.
func (m Machine) ELFClass() elf.Class {
	if m.Is64() {
		return elf.ELFCLASS64
	}
	return elf.ELFCLASS32
}

// ELFMachine code of the output.
func (m Machine) ELFMachine() elf.Machine {
	switch m {
	case Amd64:
		return elf.EM_X86_64

	case RiscV64:
		return elf.EM_RISCV

	default:
		panic(m)
	}
}

// VirtualBase is added to the load addresses of text and data.
func (m Machine) VirtualBase() uint64 {
	switch m {
	case Amd64:
		return 0x80000000

	default:
		return 0
	}
}
