// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/suzumenobu/xcactivitylog"
)

func TestWriteCSVHeaderAndRows(t *testing.T) {
	r := strings.NewReader(`SLF03%Foo1@`)
	tz, err := xcactivitylog.NewTokenizer(r, nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tz); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "type,value\nClassName,Foo\nClassInstance,1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVStopsAtFirstError(t *testing.T) {
	// Truncated payload: ClassName declares a 10-byte name but only 3
	// bytes follow, so the tokenizer fails mid-token; WriteCSV must treat
	// that as a clean end-of-stream rather than propagate it.
	r := strings.NewReader(`SLF010%Foo`)
	tz, err := xcactivitylog.NewTokenizer(r, nil)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tz); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "type,value\n" {
		t.Errorf("got %q, want header only", buf.String())
	}
}
