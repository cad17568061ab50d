// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import "bytes"

// Fuzz is the legacy go-fuzz/oss-fuzz harness entry point: decode data
// as an already-decompressed SLF0 stream and report whether it produced
// at least one object without panicking.
func Fuzz(data []byte) int {
	dec, err := NewDecoder(bytes.NewReader(data), nil)
	if err != nil {
		return 0
	}
	n := 0
	for {
		if _, err := dec.Next(); err != nil {
			break
		}
		n++
	}
	if n == 0 {
		return 0
	}
	return 1
}
