// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"golang.org/x/term"
)

const DefaultWidth = 80

// Width of the terminal behind the file descriptor, or DefaultWidth if it's
// not a terminal.
func Width(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
