// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"encoding/json"
	"testing"
)

func TestExtractSignersNilAttachment(t *testing.T) {
	signers, err := ExtractSigners(nil)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if signers != nil {
		t.Errorf("signers = %v, want nil", signers)
	}
}

func TestExtractSignersEmptyExtra(t *testing.T) {
	signers, err := ExtractSigners(&Attachment{})
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if signers != nil {
		t.Errorf("signers = %v, want nil", signers)
	}
}

func TestExtractSignersNoCandidateField(t *testing.T) {
	a := &Attachment{Extra: json.RawMessage(`{"unrelated":"value"}`)}
	signers, err := ExtractSigners(a)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if signers != nil {
		t.Errorf("signers = %v, want nil", signers)
	}
}

func TestExtractSignersInvalidBase64Skipped(t *testing.T) {
	a := &Attachment{Extra: json.RawMessage(`{"signature":"not-valid-base64!!"}`)}
	signers, err := ExtractSigners(a)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if signers != nil {
		t.Errorf("signers = %v, want nil", signers)
	}
}

func TestExtractSignersNonPKCS7DERSkipped(t *testing.T) {
	// Valid base64, valid-looking but non-PKCS7 DER: pkcs7.Parse must
	// fail and ExtractSigners falls through to (nil, nil) rather than
	// propagating the parse error.
	a := &Attachment{Extra: json.RawMessage(`{"cms":"AQIDBA=="}`)}
	signers, err := ExtractSigners(a)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if signers != nil {
		t.Errorf("signers = %v, want nil", signers)
	}
}
