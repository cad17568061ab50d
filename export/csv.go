// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package export renders a decoded SLF0 stream as CSV (raw tokens) or
// JSON (the reconstructed object graph).
package export

import (
	"fmt"
	"io"

	"github.com/suzumenobu/xcactivitylog"
)

// csvLabel is the §4.1 type label used in the CSV "type" column; it is
// not the same spelling as Kind.String(), which is for log/error text.
func csvLabel(k xcactivitylog.Kind) string {
	switch k {
	case xcactivitylog.KindInt:
		return "Int"
	case xcactivitylog.KindDouble:
		return "Double"
	case xcactivitylog.KindString:
		return "String"
	case xcactivitylog.KindClassName:
		return "ClassName"
	case xcactivitylog.KindClassInstance:
		return "ClassInstance"
	case xcactivitylog.KindJSON:
		return "Json"
	case xcactivitylog.KindArray:
		return "Array"
	case xcactivitylog.KindNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// WriteCSV walks the raw token stream from tz and writes a two-column
// "type,value" CSV, one row per token. It does not use encoding/csv: the
// source never escapes commas or quotes inside values, and this matches
// that behavior for bit-exact parity rather than fixing it. Tokenizer
// termination, for any reason, is treated as a normal end-of-stream
// rather than propagated as an error.
func WriteCSV(w io.Writer, tz *xcactivitylog.Tokenizer) error {
	if _, err := io.WriteString(w, "type,value\n"); err != nil {
		return err
	}
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil
		}
		if _, err := fmt.Fprintf(w, "%s,%s\n", csvLabel(tok.Kind), tok.String()); err != nil {
			return err
		}
	}
}
