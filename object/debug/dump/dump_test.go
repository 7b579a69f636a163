// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsavola/aout2elf"
	"github.com/tsavola/aout2elf/aout"
	"github.com/tsavola/aout2elf/arch"
	"github.com/tsavola/aout2elf/internal/test/aoutfile"
)

func testFile() *aoutfile.File {
	return &aoutfile.File{
		Magic: arch.MagicAmd64,
		Text:  []byte("\x55\x48\x89\xe5\x5d\xc3\xcc\xcc\xcc\xcc"),
		Data:  []byte("0123456789abcdefXYZ"),
		Entry: 0x200028,
		Syms: []aoutfile.Sym{
			{Value: 0x200028, Type: 'T', Name: "main"},
			{Value: 0x200030, Type: 'T', Name: "end"},
			{Value: 1, Type: 'f', Name: "main.c"},
			{Value: 1, Type: 'z', Path: []uint16{1}},
			{Value: 0x1234, Type: 0x01, Name: "odd"},
		},
	}
}

func TestPreview(t *testing.T) {
	if s := Preview([]byte{1, 0xab}); s != "[01, ab]" {
		t.Error(s)
	}
	if s := Preview(make([]byte, 100)); strings.Count(s, "00") != PreviewSize {
		t.Error(s)
	}
	if s := Preview(nil); s != "[]" {
		t.Error(s)
	}
}

func TestData(t *testing.T) {
	var b bytes.Buffer

	if err := Data(&b, "data", []byte("0123456789abcdefXYZW!"), 0x1000, 80); err != nil {
		t.Fatal(err)
	}

	expect := "data:\n" +
		"00001000 3736353433323130 6665646362613938 ........575a5958 21\n" +
		"\n"
	if s := b.String(); s != expect {
		t.Errorf("%q", s)
	}

	b.Reset()
	Data(&b, "narrow", make([]byte, 16), 0, 20)
	if lines := strings.Split(b.String(), "\n"); len(lines) != 5 {
		t.Errorf("%q", b.String())
	}
}

func TestSummary(t *testing.T) {
	f, err := aout.Parse(testFile().Bytes())
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := Summary(&b, f, true); err != nil {
		t.Fatal(err)
	}

	s := b.String()
	for _, line := range []string{
		"Architecture: Amd64\n",
		"Entry point:  00200028\n",
		"Code:    0000000a bytes @ 00000028 [55, 48, 89, e5, 5d, c3, cc, cc, cc, cc]\n",
		"Data:    00000013 bytes @ 00000032 [30, 31, 32, 33",
		"Symbols: ",
	} {
		if !strings.Contains(s, line) {
			t.Errorf("%q not in:\n%s", line, s)
		}
	}

	b.Reset()
	Header(&b, &f.Header)
	if !strings.Contains(b.String(), "TextSize: (uint32) 10") {
		t.Error(b.String())
	}
}

func TestSymbols(t *testing.T) {
	f, err := aout.Parse(testFile().Bytes())
	if err != nil {
		t.Fatal(err)
	}

	syms, err := f.Symbols()
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := Symbols(&b, syms); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != len(syms) {
		t.Fatal(b.String())
	}

	if !strings.HasPrefix(lines[0], " 00000000: Symbol 00200028: TextSegment") {
		t.Error(lines[0])
	}
	if !strings.HasSuffix(lines[3], "(main.c)") {
		t.Error(lines[3])
	}
	if !strings.HasSuffix(lines[4], ": Unknown symbol 01 00001234") {
		t.Error(lines[4])
	}
}

func TestELF(t *testing.T) {
	data := testFile().Bytes()
	if IsELF(data) {
		t.Error("a.out recognized as ELF")
	}

	obj, err := aout2elf.Convert(nil, data)
	if err != nil {
		t.Fatal(err)
	}
	if !IsELF(obj.Image) {
		t.Fatal("not ELF")
	}

	var b bytes.Buffer
	if err := ELF(&b, obj.Image); err != nil {
		t.Fatal(err)
	}

	s := b.String()
	for _, x := range []string{"This is an ELF", "EM_X86_64", ".shstrtab", "PT_LOAD", "STT_FUNC", "main"} {
		if !strings.Contains(s, x) {
			t.Errorf("%q not in:\n%s", x, s)
		}
	}
}

func TestTextRiscV(t *testing.T) {
	var b bytes.Buffer

	err := Text(&b, []byte{0x13, 0, 0, 0, 0x67, 0x80, 0, 0, 1}, 0x1000, arch.RiscV64, 10)
	if err != nil {
		t.Fatal(err)
	}

	expect := "00001000\t.word\t0x00000013\n" +
		"00001004\t.word\t0x00008067\n"
	if s := b.String(); s != expect {
		t.Errorf("%q", s)
	}
}

func TestTextAmd64(t *testing.T) {
	var b bytes.Buffer

	if err := Text(&b, testFile().Text, 0, arch.Amd64, 20); err != nil {
		t.Fatal(err)
	}

	s := b.String()
	if !strings.Contains(s, "push") || !strings.Contains(s, "ret") {
		t.Error(s)
	}
	if n := strings.Count(s, "int3"); n != 1 {
		t.Errorf("%d padding instructions shown:\n%s", n, s)
	}
}
