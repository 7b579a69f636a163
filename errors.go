// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aout2elf

import (
	"golang.org/x/xerrors"
)

type inputError interface {
	error
	InputError() string
}

type bufferSizeError interface {
	error
	BufferSizeLimit() string
}

// IsInputError reports whether err (or an error it wraps) was caused by
// malformed or unsupported input.
func IsInputError(err error) bool {
	var e inputError
	return xerrors.As(err, &e)
}

// IsBufferSizeLimit reports whether err (or an error it wraps) indicates that
// the image didn't fit in the target buffer.
func IsBufferSizeLimit(err error) bool {
	var e bufferSizeError
	return xerrors.As(err, &e)
}
