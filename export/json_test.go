// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/suzumenobu/xcactivitylog"
)

func TestWriteJSONTagsBuildLog(t *testing.T) {
	r := strings.NewReader(`SLF022%IDECommandLineBuildLog1@0#0"0"0"0000000000000000^0000000000000000^-`)
	dec, err := xcactivitylog.NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, dec); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got []struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal output: %v\noutput: %s", err, buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Type != "IDECommandLineBuildLog" {
		t.Errorf("Type = %q, want IDECommandLineBuildLog", got[0].Type)
	}
}

func TestWriteJSONPropagatesDecodeError(t *testing.T) {
	// A ClassInstance with no preceding ClassName: the registry lookup
	// must fail, and WriteJSON must surface that instead of swallowing it
	// the way WriteCSV does.
	r := strings.NewReader(`SLF01@`)
	dec, err := xcactivitylog.NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, dec); err == nil {
		t.Fatal("WriteJSON err = nil, want non-nil")
	}
}
