// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz
// +build gofuzz

package aout2elf

const fuzzMaxImageSize = 16 * 1024 * 1024

// Fuzz entry point for go-fuzz.
func Fuzz(data []byte) int {
	_, err := Convert(&Config{MaxImageSize: fuzzMaxImageSize}, data)
	if err == nil {
		return 1
	}
	if !IsInputError(err) {
		panic(err)
	}
	return 0
}
