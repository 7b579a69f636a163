// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aout2elf converts Plan 9 a.out executables to ELF executables.
//
// # Errors
//
// Error types are accessible via errors subpackage.  Malformed or unsupported
// input is reported with an error implementing the InputError method.  Other
// types of errors indicate a write error or an internal error.
//
// Default buffer implementations use the buffer.ErrSizeLimit error to indicate
// that the image doesn't fit in the target buffer.  It is an input error (the
// input didn't conform to size constraints).
package aout2elf
