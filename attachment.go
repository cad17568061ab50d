// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import "encoding/json"

// Attachment is an IDEActivityLogSectionAttachment: an identifier,
// version pair, and an opaque trailing JSON payload whose shape is not
// otherwise specified, so it is deferred as raw JSON rather than parsed
// into a fixed struct.
type Attachment struct {
	Identifier   string
	MajorVersion uint64
	MinorVersion uint64
	Extra        json.RawMessage
}

func (a *Attachment) isObject() {}

// decodeAttachment reads the IDEActivityLogSectionAttachment schema.
func decodeAttachment(d *Decoder) (*Attachment, error) {
	if _, err := d.src.next(); err != nil { // the ClassInstance token itself
		return nil, err
	}

	identifier, err := nextStr(d)
	if err != nil {
		return nil, err
	}
	majorVersion, err := nextUint64(d)
	if err != nil {
		return nil, err
	}
	minorVersion, err := nextUint64(d)
	if err != nil {
		return nil, err
	}
	tok, err := d.src.next()
	if err != nil {
		return nil, err
	}
	var extra json.RawMessage
	switch tok.Kind {
	case KindJSON:
		text, err := tok.JSON()
		if err != nil {
			return nil, err
		}
		extra = json.RawMessage(text)
	case KindNull:
		extra = nil
	default:
		return nil, convErr(tok.Kind, "attachment extra")
	}

	return &Attachment{
		Identifier:   identifier,
		MajorVersion: majorVersion,
		MinorVersion: minorVersion,
		Extra:        extra,
	}, nil
}
