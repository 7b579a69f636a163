// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

const PreviewSize = 16

// Preview formats the first PreviewSize bytes as a bracketed list.
func Preview(data []byte) string {
	if len(data) > PreviewSize {
		data = data[:PreviewSize]
	}

	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Data writes 64-bit little-endian words, as many per line as fit in the
// given width.  Address zero means relative addressing.
func Data(w io.Writer, name string, data []byte, addr uint64, width int) (err error) {
	words := (width - 8) / 17
	if words < 1 {
		words = 1
	}
	if words > 8 {
		words = 8
	}

	relative := addr == 0

	fmt.Fprintf(w, "%s:\n", name)

	for len(data) > 0 {
		if relative {
			fmt.Fprintf(w, "%8x", addr)
		} else {
			fmt.Fprintf(w, "%08x", addr)
		}

		for i := 0; i < words && len(data) > 0; i++ {
			switch {
			case len(data) >= 8:
				fmt.Fprintf(w, " %016x", binary.LittleEndian.Uint64(data))
				data = data[8:]
				addr += 8

			case len(data) >= 4:
				fmt.Fprintf(w, " ........%08x", binary.LittleEndian.Uint32(data))
				data = data[4:]
				addr += 4

			default:
				fmt.Fprintf(w, " %x", data)
				addr += uint64(len(data))
				data = nil
			}
		}

		fmt.Fprintln(w)
	}

	_, err = fmt.Fprintln(w)
	return
}
