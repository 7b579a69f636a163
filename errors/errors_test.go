// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"testing"

	"golang.org/x/xerrors"
)

type inputError interface {
	error
	InputError() string
}

func TestInputError(t *testing.T) {
	var _ = Format("").(inputError)
	var _ = Formatf("").(inputError)
	var _ = WrapFormat(io.EOF, "").(inputError)
	var _ = Truncated("", 0, 0, 0).(inputError)
	var _ inputError = &UnsupportedArchitecture{}
	var _ inputError = &SymbolParseError{}
}

func TestMessages(t *testing.T) {
	for _, c := range []struct {
		err    error
		expect string
	}{
		{Format("header"), "a.out format: header"},
		{&UnsupportedArchitecture{0x12345678}, "a.out not recognized or unsupported architecture: 12345678"},
		{Truncated("text segment", 0x28, 100, 10), "truncated input: text segment needs 100 bytes at offset 0x28, but only 10 available"},
		{&SymbolParseError{Offset: 0x1c, Reason: "bad"}, "symbol at 0x1c: bad"},
	} {
		if s := c.err.Error(); s != c.expect {
			t.Error(s)
		}
	}
}

func TestWrapFormat(t *testing.T) {
	err := xerrors.Errorf("context: %w", WrapFormat(io.ErrUnexpectedEOF, "unexpected end of input"))

	if !xerrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error(err)
	}

	var e *FormatError
	if !xerrors.As(err, &e) || e.Text != "unexpected end of input" {
		t.Error(err)
	}
}
