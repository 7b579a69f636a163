// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports the error types returned for malformed input.
//
// All of them implement the following interface:
//
//	interface {
//	    InputError() string
//	}
//
// Errors without the InputError method are read or write errors, or
// internal errors.
package errors

import (
	"fmt"
)

// FormatError indicates that the a.out header is too short or otherwise
// structurally invalid.
type FormatError struct {
	Text  string
	Cause error
}

func (e *FormatError) Error() string      { return "a.out format: " + e.Text }
func (e *FormatError) InputError() string { return e.Error() }
func (e *FormatError) Unwrap() error      { return e.Cause }

// UnsupportedArchitecture indicates that the header magic doesn't map to a
// known target machine.
type UnsupportedArchitecture struct {
	Magic uint32
}

func (e *UnsupportedArchitecture) Error() string {
	return fmt.Sprintf("a.out not recognized or unsupported architecture: %08x", e.Magic)
}

func (e *UnsupportedArchitecture) InputError() string { return e.Error() }

// TruncatedInput indicates that a region declared by the header (or implied
// by a symbol record) extends past the end of the available bytes.
type TruncatedInput struct {
	Region    string
	Offset    uint64
	Size      uint64
	Available uint64
}

func (e *TruncatedInput) Error() string {
	return fmt.Sprintf("truncated input: %s needs %d bytes at offset %#x, but only %d available", e.Region, e.Size, e.Offset, e.Available)
}

func (e *TruncatedInput) InputError() string { return e.Error() }

// SymbolParseError indicates an undecodable symbol record.
type SymbolParseError struct {
	Offset int // Position of the record within the symbol table.
	Reason string
}

func (e *SymbolParseError) Error() string {
	return fmt.Sprintf("symbol at %#x: %s", e.Offset, e.Reason)
}

func (e *SymbolParseError) InputError() string { return e.Error() }

// Truncated constructs a TruncatedInput error.
func Truncated(region string, offset, size, available uint64) error {
	return &TruncatedInput{region, offset, size, available}
}

// Format constructs a FormatError.
func Format(text string) error {
	return &FormatError{Text: text}
}

// Formatf constructs a FormatError.
func Formatf(format string, args ...interface{}) error {
	return &FormatError{Text: fmt.Sprintf(format, args...)}
}

// WrapFormat constructs a FormatError which wraps a cause.
func WrapFormat(cause error, text string) error {
	return &FormatError{text, cause}
}
