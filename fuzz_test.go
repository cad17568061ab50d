// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"bytes"
	"testing"
)

// FuzzDecode exercises the decoder the native go test way, complementing
// the legacy go-fuzz entry point in fuzz.go: whatever bytes the fuzzer
// finds, decoding must never panic, however it errors out.
func FuzzDecode(f *testing.F) {
	f.Add([]byte("SLF0"))
	f.Add([]byte("SLF021%IDEActivityLogSection1@0#0\"0\"0\"0000000000000000^0000000000000000^-------------"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		dec, err := NewDecoder(bytes.NewReader(data), nil)
		if err != nil {
			return
		}
		for i := 0; i < 1024; i++ {
			if _, err := dec.Next(); err != nil {
				return
			}
		}
	})
}

func TestFuzzEntryPointNeverPanics(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("SLF0"),
		[]byte("SLF0garbage"),
		[]byte("SLF01@"),
	}
	for _, c := range cases {
		Fuzz(c)
	}
}
