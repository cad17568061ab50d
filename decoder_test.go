// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// zeroDouble is the 16-hex-digit little-endian encoding of 0.0.
const zeroDouble = "0000000000000000^"

// stream joins pieces behind the 4-byte SLF0 header every Tokenizer
// discards on construction.
func stream(pieces ...string) io.Reader {
	return strings.NewReader("SLF0" + strings.Join(pieces, ""))
}

// minimalSectionTokens is every slot of an IDEActivityLogSection with no
// sub-sections, no messages, no attachments, and every optional slot
// absent, in schema order.
func minimalSectionTokens(classInstance string) []string {
	return []string{
		classInstance,
		`0#`, `0"`, `0"`, `0"`, zeroDouble, zeroDouble, // header
		`-`, // sub_sections_size
		`-`, // text
		`-`, // messages_size
		`0#`, `0#`, `0#`, // was_cancelled, is_quiet, was_fetched_from_cache
		`-`, // subtitle
		`-`, // location
		`-`, // command_details_spec
		`-`, // unique_identifier
		`-`, // localized_result_string
		`-`, // xcbuild_signature
	}
}

func TestDecodeMinimalBuildLog(t *testing.T) {
	r := stream(
		`22%IDECommandLineBuildLog`,
		`1@`,
		`0#`, `0"`, `0"`, `0"`, zeroDouble, zeroDouble,
		`-`,
	)
	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	obj, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	bl, ok := obj.(*BuildLog)
	if !ok {
		t.Fatalf("got %T, want *BuildLog", obj)
	}
	if len(bl.SubSections) != 0 {
		t.Errorf("SubSections = %v, want empty", bl.SubSections)
	}

	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("second Next err = %v, want io.EOF", err)
	}
}

func TestDecodeMinimalSection(t *testing.T) {
	pieces := append([]string{`21%IDEActivityLogSection`}, minimalSectionTokens(`1@`)...)
	r := stream(pieces...)

	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	obj, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	sec, ok := obj.(*Section)
	if !ok {
		t.Fatalf("got %T, want *Section", obj)
	}
	if sec.Location != nil {
		t.Errorf("Location = %v, want nil", sec.Location)
	}
	if len(sec.Attachments) != 0 {
		t.Errorf("Attachments = %v, want empty", sec.Attachments)
	}
	if sec.Unknown != nil {
		t.Errorf("Unknown = %v, want nil (no attachments means no probe)", sec.Unknown)
	}

	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("second Next err = %v, want io.EOF", err)
	}
}

func TestDecodeNestedSubSection(t *testing.T) {
	pieces := []string{`21%IDEActivityLogSection`, `1@`,
		`0#`, `0"`, `0"`, `0"`, zeroDouble, zeroDouble,
		`1(`, // sub_sections_size = Array(1), reuses registry index 1
	}
	pieces = append(pieces, minimalSectionTokens(`1@`)...)
	pieces = append(pieces,
		`-`, // text
		`-`, // messages_size
		`0#`, `0#`, `0#`,
		`-`, `-`, `-`, `-`, `-`, `-`,
	)
	r := stream(pieces...)

	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	obj, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	sec := obj.(*Section)
	if len(sec.SubSections) != 1 {
		t.Fatalf("SubSections = %d, want 1", len(sec.SubSections))
	}
	if len(sec.SubSections[0].SubSections) != 0 {
		t.Errorf("nested SubSections = %v, want empty", sec.SubSections[0].SubSections)
	}
}

func TestDecodeRecursionDepthExceeded(t *testing.T) {
	pieces := []string{`21%IDEActivityLogSection`, `1@`,
		`0#`, `0"`, `0"`, `0"`, zeroDouble, zeroDouble,
		`1(`,
	}
	pieces = append(pieces, minimalSectionTokens(`1@`)...)
	pieces = append(pieces,
		`-`, `-`, `0#`, `0#`, `0#`, `-`, `-`, `-`, `-`, `-`, `-`,
	)
	r := stream(pieces...)

	dec, err := NewDecoder(r, &Options{MaxRecursionDepth: 1})
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, err := dec.Next(); !errors.Is(err, ErrRecursionDepthExceeded) {
		t.Errorf("err = %v, want ErrRecursionDepthExceeded", err)
	}
}

func TestDecodeUnknownClassName(t *testing.T) {
	r := stream(`3%Foo`, `1@`)
	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, err := dec.Next(); !errors.Is(err, ErrUnknownClassName) {
		t.Errorf("err = %v, want ErrUnknownClassName", err)
	}
}

func TestDecodeClassIndexOutOfRange(t *testing.T) {
	r := stream(`1@`)
	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, err := dec.Next(); !errors.Is(err, ErrClassIndexOutOfRange) {
		t.Errorf("err = %v, want ErrClassIndexOutOfRange", err)
	}
}

func TestDecodeCommandInvocationSection(t *testing.T) {
	r := stream(
		`38%IDEActivityLogCommandInvocationSection`,
		`1@`,
		`0#`, `0"`, `0"`, `0"`, zeroDouble, zeroDouble,
		`-`, // sub_sections_size
		`-`, // text
		`-`, // messages_size
		`0#`, // was_cancelled
	)
	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	obj, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, ok := obj.(*CommandInvocationSection); !ok {
		t.Fatalf("got %T, want *CommandInvocationSection", obj)
	}
}

func TestDecodeUnitTestSectionSkipsSixSlots(t *testing.T) {
	r := stream(
		`29%IDEActivityLogUnitTestSection`,
		`1@`,
		`-`, `-`, `-`, `-`, `-`, `-`,
	)
	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	obj, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, ok := obj.(*UnitTestSection); !ok {
		t.Fatalf("got %T, want *UnitTestSection", obj)
	}
}

func TestDecodeBaseDocumentLocation(t *testing.T) {
	r := stream(
		`19%DVTDocumentLocation`,
		`1@`, `0"`, zeroDouble,
	)
	dec, err := NewDecoder(r, nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	obj, err := dec.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	loc, ok := obj.(*BaseDocumentLocation)
	if !ok {
		t.Fatalf("got %T, want *BaseDocumentLocation", obj)
	}
	if loc.DocumentURLString != "" {
		t.Errorf("DocumentURLString = %q, want empty", loc.DocumentURLString)
	}
}
