// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// withHeader prepends the 4-byte SLF0 magic to body, the shape every
// golden stream in this file shares.
func withHeader(body string) []byte {
	return append([]byte("SLF0"), []byte(body)...)
}

func TestTokenizerNext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Token
	}{
		{"int", "5#", NewIntToken(5)},
		{"null", "-", NewNullToken()},
		{"string", `3"abc`, NewStringToken("abc")},
		{"class_name", `3%Foo`, NewClassNameToken("Foo")},
		{"class_instance", "1@", NewClassInstanceToken(1)},
		{"array", "2(", NewArrayToken(2)},
		{"json", `2*{}`, NewJSONToken("{}")},
		// 1.5 as binary64, hex pairs left-to-right, reinterpreted little-endian.
		{"double", "000000000000f83f^", NewDoubleToken(1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, err := NewTokenizer(bytes.NewReader(withHeader(tt.in)), nil)
			if err != nil {
				t.Fatalf("NewTokenizer: %v", err)
			}
			got, err := tz.Next()
			if err != nil {
				t.Fatalf("Next(): %v", err)
			}
			if got != tt.want {
				t.Errorf("Next() = %+v, want %+v", got, tt.want)
			}
			if _, err := tz.Next(); !errors.Is(err, io.EOF) {
				t.Errorf("second Next() = %v, want io.EOF", err)
			}
		})
	}
}

func TestTokenizerSequence(t *testing.T) {
	tz, err := NewTokenizer(bytes.NewReader(withHeader(`3%Foo1@5#`)), nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	want := []Token{NewClassNameToken("Foo"), NewClassInstanceToken(1), NewIntToken(5)}
	for i, w := range want {
		got, err := tz.Next()
		if err != nil {
			t.Fatalf("Next() #%d: %v", i, err)
		}
		if got != w {
			t.Errorf("Next() #%d = %+v, want %+v", i, got, w)
		}
	}
	if _, err := tz.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("final Next() = %v, want io.EOF", err)
	}
}

func TestTokenizerTruncatedHeader(t *testing.T) {
	_, err := NewTokenizer(bytes.NewReader([]byte("SL")), nil)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("NewTokenizer() = %v, want ErrUnexpectedEOF", err)
	}
}

func TestTokenizerTruncatedPayload(t *testing.T) {
	tz, err := NewTokenizer(bytes.NewReader(withHeader(`10"abc`)), nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, err := tz.Next(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("Next() = %v, want ErrUnexpectedEOF", err)
	}
}

func TestTokenizerNonEmptyNullLHS(t *testing.T) {
	tz, err := NewTokenizer(bytes.NewReader(withHeader(`7-`)), nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, err := tz.Next(); !errors.Is(err, ErrNonEmptyNullLHS) {
		t.Errorf("Next() = %v, want ErrNonEmptyNullLHS", err)
	}
}

func TestTokenizerNonNumericLHS(t *testing.T) {
	tz, err := NewTokenizer(bytes.NewReader(withHeader(`abc#`)), nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, err := tz.Next(); !errors.Is(err, ErrNonNumericLHS) {
		t.Errorf("Next() = %v, want ErrNonNumericLHS", err)
	}
}

func TestTokenizerInvalidDoubleHex(t *testing.T) {
	tz, err := NewTokenizer(bytes.NewReader(withHeader(`zz^`)), nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, err := tz.Next(); !errors.Is(err, ErrInvalidDoubleHex) {
		t.Errorf("Next() = %v, want ErrInvalidDoubleHex", err)
	}
}

func TestTokenizerInvalidUTF8Strict(t *testing.T) {
	// Two raw 0x80 continuation bytes with no leading byte: invalid
	// under both validators.
	body := append(withHeader(`2"`), 0x80, 0x80)
	tz, err := NewTokenizer(bytes.NewReader(body), nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, err := tz.Next(); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Next() = %v, want ErrInvalidUTF8", err)
	}
}

func TestTokenizerRelaxedUTF8(t *testing.T) {
	tz, err := NewTokenizer(bytes.NewReader(withHeader(`3"abc`)), &Options{RelaxedUTF8: true})
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	got, err := tz.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if got != NewStringToken("abc") {
		t.Errorf("Next() = %+v", got)
	}
}
