// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"io"

	"github.com/tsavola/aout2elf/errors"
	"import.name/pan"
)

// Error converts a recovered value to an error.  Values which were not
// raised by pan.Panic are re-panicked.
func Error(x interface{}) error {
	err := pan.Error(x)
	if err == nil {
		return nil
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.WrapFormat(io.ErrUnexpectedEOF, "unexpected end of input")
	}

	return err
}
