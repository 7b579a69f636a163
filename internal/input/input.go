// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input loads whole input files into memory.
package input

// File contents.  Close must be called when the data is no longer used.
type File struct {
	Data  []byte
	unmap func([]byte) error
}

func (f *File) Close() (err error) {
	if f.unmap != nil && f.Data != nil {
		err = f.unmap(f.Data)
	}
	f.Data = nil
	return
}
