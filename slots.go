// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"errors"
	"io"
)

// Slot readers: each pulls exactly one token from the decoder's source
// and projects it to the primitive or optional type a schema slot
// declares, per the conversions in token.go. These are the glue between
// the per-class schema functions and the token stream.

func nextToken(d *Decoder) (Token, error) {
	return d.src.next()
}

func nextUint64(d *Decoder) (uint64, error) {
	tok, err := nextToken(d)
	if err != nil {
		return 0, err
	}
	return tok.Uint64()
}

func nextInt32(d *Decoder) (int32, error) {
	tok, err := nextToken(d)
	if err != nil {
		return 0, err
	}
	return tok.Int32()
}

func nextInt8(d *Decoder) (int8, error) {
	tok, err := nextToken(d)
	if err != nil {
		return 0, err
	}
	return tok.Int8()
}

func nextBool(d *Decoder) (bool, error) {
	tok, err := nextToken(d)
	if err != nil {
		return false, err
	}
	return tok.Bool()
}

func nextFloat64(d *Decoder) (float64, error) {
	tok, err := nextToken(d)
	if err != nil {
		return 0, err
	}
	return tok.Float64()
}

func nextStr(d *Decoder) (string, error) {
	tok, err := nextToken(d)
	if err != nil {
		return "", err
	}
	return tok.Str()
}

// nextOptIndex reads a count slot (Array.count, usually feeding a
// deser_vec call) and treats an absent value as zero.
func nextOptIndex(d *Decoder) (int, error) {
	tok, err := nextToken(d)
	if err != nil {
		return 0, err
	}
	p, err := tok.OptIndex()
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nil
	}
	return *p, nil
}

func nextOptStr(d *Decoder) (*string, error) {
	tok, err := nextToken(d)
	if err != nil {
		return nil, err
	}
	return tok.OptStr()
}

func nextOptUint64(d *Decoder) (*uint64, error) {
	tok, err := nextToken(d)
	if err != nil {
		return nil, err
	}
	return tok.OptUint64()
}

func nextOptBool(d *Decoder) (*bool, error) {
	tok, err := nextToken(d)
	if err != nil {
		return nil, err
	}
	return tok.OptBool()
}

// Trailing-field probes: each peeks before consuming, only advancing
// the stream when the peeked kind matches the slot's expected primitive
// family. *ok tracks whether the probe is still live; once a mismatch
// or the end of the stream is seen it latches false and every subsequent probe call on the same
// *ok becomes a no-op, per the "present only if all prior were present"
// rule on IDEActivityLogSection's trailing fields.

func probeOptUint64(d *Decoder, ok *bool) (*uint64, error) {
	if !*ok {
		return nil, nil
	}
	tok, err := d.src.peek()
	if errors.Is(err, io.EOF) {
		*ok = false
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tok.Kind != KindInt && tok.Kind != KindNull {
		*ok = false
		return nil, nil
	}
	t, err := d.src.next()
	if err != nil {
		return nil, err
	}
	return t.OptUint64()
}

func probeBool(d *Decoder, ok *bool) (bool, error) {
	if !*ok {
		return false, nil
	}
	tok, err := d.src.peek()
	if errors.Is(err, io.EOF) {
		*ok = false
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if tok.Kind != KindInt && tok.Kind != KindNull {
		*ok = false
		return false, nil
	}
	t, err := d.src.next()
	if err != nil {
		return false, err
	}
	p, err := t.OptBool()
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	return *p, nil
}

func probeOptStr(d *Decoder, ok *bool) (*string, error) {
	if !*ok {
		return nil, nil
	}
	tok, err := d.src.peek()
	if errors.Is(err, io.EOF) {
		*ok = false
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tok.Kind != KindString && tok.Kind != KindNull {
		*ok = false
		return nil, nil
	}
	t, err := d.src.next()
	if err != nil {
		return nil, err
	}
	return t.OptStr()
}
