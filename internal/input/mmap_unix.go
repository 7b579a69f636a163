// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix
// +build unix

package input

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open maps a file read-only.  Empty files are not mapped.
func Open(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := info.Size()
	if size == 0 || !info.Mode().IsRegular() {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return &File{Data: data}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: filename, Err: err}
	}

	return &File{Data: data, unmap: unix.Munmap}, nil
}
