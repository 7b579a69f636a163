// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aout

import (
	"fmt"
)

// SymbolType is the semantic category of a symbol record's type byte.
type SymbolType uint8

const (
	Unknown SymbolType = iota
	TextSegment
	StaticTextSegment
	LeafFunction
	StaticLeafFunction
	DataSegment
	StaticDataSegment
	BssSegment
	StaticBssSegment
	AutoVariable
	FunctionParam
	FrameSymbol
	SourceFileNameComp
	SourceFileName
	SourceFileOffset
	Underscore
	Curly
	E
	G
	I
	O
	S
	U
	V
	W
	Zero
)

var symbolTypeNames = [...]string{
	Unknown:            "Unknown",
	TextSegment:        "TextSegment",
	StaticTextSegment:  "StaticTextSegment",
	LeafFunction:       "LeafFunction",
	StaticLeafFunction: "StaticLeafFunction",
	DataSegment:        "DataSegment",
	StaticDataSegment:  "StaticDataSegment",
	BssSegment:         "BssSegment",
	StaticBssSegment:   "StaticBssSegment",
	AutoVariable:       "AutoVariable",
	FunctionParam:      "FunctionParam",
	FrameSymbol:        "FrameSymbol",
	SourceFileNameComp: "SourceFileNameComp",
	SourceFileName:     "SourceFileName",
	SourceFileOffset:   "SourceFileOffset",
	Underscore:         "Underscore",
	Curly:              "Curly",
	E:                  "E",
	G:                  "G",
	I:                  "I",
	O:                  "O",
	S:                  "S",
	U:                  "U",
	V:                  "V",
	W:                  "W",
	Zero:               "Zero",
}

func (t SymbolType) String() string {
	if int(t) < len(symbolTypeNames) {
		return symbolTypeNames[t]
	}
	return fmt.Sprintf("SymbolType(%d)", uint8(t))
}

// See a.out(6).
var symbolTypes = [128]SymbolType{
	'T': TextSegment,
	't': StaticTextSegment,
	'L': LeafFunction,
	'l': StaticLeafFunction,
	'D': DataSegment,
	'd': StaticDataSegment,
	'B': BssSegment,
	'b': StaticBssSegment,
	'a': AutoVariable,
	'p': FunctionParam,
	'm': FrameSymbol,
	'f': SourceFileNameComp,
	'z': SourceFileName,
	'Z': SourceFileOffset,
	'_': Underscore,
	'{': Curly,
	'e': E,
	'g': G,
	'I': I,
	'o': O,
	'S': S,
	'u': U,
	'v': V,
	'w': W,
	'0': Zero,
}

// Classify a raw type byte.  The top bit is ignored.
func Classify(b byte) SymbolType {
	return symbolTypes[b&0x7f]
}

// IsText reports whether symbols of this type are placed in the text segment
// as ordinary (non-leaf) functions.
func (t SymbolType) IsText() bool {
	return t == TextSegment || t == StaticTextSegment
}
