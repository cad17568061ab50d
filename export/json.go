// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/suzumenobu/xcactivitylog"
)

// taggedObject is the wire shape of one entry in the JSON array: a type
// tag naming the concrete class plus its field values, mirroring the
// tagged-union Object sum type.
type taggedObject struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// WriteJSON drains dec and writes a pretty-printed JSON array of tagged
// top-level objects. It stops cleanly at end-of-stream and propagates
// any other decode error to the caller, since — unlike the CSV path —
// a schema-layer failure here means the object graph is incomplete.
func WriteJSON(w io.Writer, dec *xcactivitylog.Decoder) error {
	var tagged []taggedObject
	for {
		obj, err := dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		typ, value := tagObject(obj)
		tagged = append(tagged, taggedObject{Type: typ, Value: value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tagged)
}

func tagObject(obj xcactivitylog.Object) (string, interface{}) {
	switch v := obj.(type) {
	case *xcactivitylog.BuildLog:
		return "IDECommandLineBuildLog", v
	case *xcactivitylog.Section:
		return "IDEActivityLogSection", v
	case *xcactivitylog.CommandInvocationSection:
		return "IDEActivityLogCommandInvocationSection", v
	case *xcactivitylog.Message:
		return "IDEActivityLogMessage", v
	case *xcactivitylog.Attachment:
		return "IDEActivityLogSectionAttachment", v
	case *xcactivitylog.UnitTestSection:
		return "IDEActivityLogUnitTestSection", v
	case *xcactivitylog.BaseDocumentLocation:
		return "DVTDocumentLocation", v
	case *xcactivitylog.TextDocumentLocation:
		return "DVTTextDocumentLocation", v
	case *xcactivitylog.MemberDocumentLocation:
		return "DVTMemberDocumentLocation", v
	default:
		return "Unknown", v
	}
}
