// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/suzumenobu/xcactivitylog/log"
)

// slfHeaderSize is the length of the fixed magic every SLF0 stream
// starts with. The tokenizer consumes and discards it without checking
// its contents: a garbled 4-byte header is accepted, and a header shorter
// than 4 bytes makes NewTokenizer fail with ErrUnexpectedEOF.
const slfHeaderSize = 4

// Tokenizer turns a gzip-decompressed SLF0 byte stream into a lazy
// sequence of Tokens. It reads one byte at a time, recognizing the
// single-byte sigils in sigilKind below, and is the byte-level half of
// the two-stage decoder whose other half is Decoder.
type Tokenizer struct {
	r           *bufio.Reader
	relaxedUTF8 bool
	utf8Strict  *unicode.Decoder
	log         *log.Helper
}

// sigilKind maps each recognized sigil byte to the token kind it
// introduces. Any other byte is accumulated into the left-hand side.
var sigilKind = map[byte]Kind{
	'#': KindInt,
	'^': KindDouble,
	'-': KindNull,
	'"': KindString,
	'%': KindClassName,
	'@': KindClassInstance,
	'(': KindArray,
	'*': KindJSON,
}

// NewTokenizer wraps r, reads and discards the 4-byte SLF0 header, and
// returns a Tokenizer ready to emit tokens via Next.
func NewTokenizer(r io.Reader, opts *Options) (*Tokenizer, error) {
	opts = opts.withDefaults()
	tz := &Tokenizer{
		r:           bufio.NewReader(r),
		relaxedUTF8: opts.RelaxedUTF8,
		utf8Strict:  unicode.UTF8.NewDecoder(),
		log:         log.NewHelper(opts.Logger),
	}
	var hdr [slfHeaderSize]byte
	if _, err := io.ReadFull(tz.r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: reading SLF0 header: %v", ErrUnexpectedEOF, err)
	}
	return tz, nil
}

// Next reads and returns the next token. It returns io.EOF, and only
// io.EOF, when the stream ends cleanly between tokens; any malformed
// token terminates the stream with a descriptive, non-EOF error and the
// Tokenizer must not be used again.
func (tz *Tokenizer) Next() (Token, error) {
	lhs, kind, err := tz.scanLHSAndKind()
	if err != nil {
		return Token{}, err
	}

	switch kind {
	case KindNull:
		if lhs != "" {
			return Token{}, fmt.Errorf("%w: %q", ErrNonEmptyNullLHS, lhs)
		}
		return NewNullToken(), nil

	case KindInt:
		v, err := strconv.ParseUint(lhs, 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %q: %v", ErrNonNumericLHS, lhs, err)
		}
		return NewIntToken(v), nil

	case KindClassInstance:
		v, err := strconv.ParseUint(lhs, 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %q: %v", ErrNonNumericLHS, lhs, err)
		}
		return NewClassInstanceToken(v), nil

	case KindArray:
		v, err := strconv.ParseUint(lhs, 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %q: %v", ErrNonNumericLHS, lhs, err)
		}
		return NewArrayToken(v), nil

	case KindDouble:
		v, err := tz.decodeDouble(lhs)
		if err != nil {
			return Token{}, err
		}
		return NewDoubleToken(v), nil

	case KindString:
		text, err := tz.readPayload(lhs)
		if err != nil {
			return Token{}, err
		}
		return NewStringToken(text), nil

	case KindClassName:
		text, err := tz.readPayload(lhs)
		if err != nil {
			return Token{}, err
		}
		tz.log.Debugf("class name declared: %s", text)
		return NewClassNameToken(text), nil

	case KindJSON:
		text, err := tz.readPayload(lhs)
		if err != nil {
			return Token{}, err
		}
		return NewJSONToken(text), nil

	default:
		return Token{}, fmt.Errorf("%w: sigil kind %v", ErrUnknownSigil, kind)
	}
}

// scanLHSAndKind accumulates bytes until one matches a known sigil,
// returning the accumulated left-hand side text and the token kind the
// sigil introduces. Reaching end-of-stream with an empty left-hand side
// is a clean io.EOF; reaching it mid left-hand side is ErrUnexpectedEOF.
func (tz *Tokenizer) scanLHSAndKind() (string, Kind, error) {
	var lhs []byte
	for {
		b, err := tz.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(lhs) == 0 {
				return "", 0, io.EOF
			}
			return "", 0, fmt.Errorf("%w: scanning token: %v", ErrUnexpectedEOF, err)
		}
		if kind, ok := sigilKind[b]; ok {
			return string(lhs), kind, nil
		}
		lhs = append(lhs, b)
	}
}

// readPayload reads the N raw bytes that follow a String/ClassName/Json
// sigil, where N is the decimal length carried in lhs, and validates
// them as UTF-8.
func (tz *Tokenizer) readPayload(lhs string) (string, error) {
	n, err := strconv.ParseUint(lhs, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrNonNumericLHS, lhs, err)
	}
	// The buffer grows as bytes arrive, so a huge declared length on a
	// short stream ends in ErrUnexpectedEOF rather than a giant allocation.
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, tz.r, int64(min(n, math.MaxInt64))); err != nil {
		return "", fmt.Errorf("%w: reading %d-byte payload: %v", ErrUnexpectedEOF, n, err)
	}
	if err := tz.validateUTF8(buf.Bytes()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// validateUTF8 rejects malformed text. By default it runs the payload
// through golang.org/x/text/encoding/unicode's UTF8 decoder, which
// replaces ill-formed sequences with U+FFFD instead of failing, so any
// difference between its output and the input is reported as
// ErrInvalidUTF8; Options.RelaxedUTF8 uses utf8.Valid instead. Both
// reject the same inputs, overlong encodings and surrogate halves
// included.
func (tz *Tokenizer) validateUTF8(buf []byte) error {
	if tz.relaxedUTF8 {
		if !utf8.Valid(buf) {
			return fmt.Errorf("%w: %d bytes", ErrInvalidUTF8, len(buf))
		}
		return nil
	}
	out, _, err := tz.utf8Strict.Bytes(buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	if !bytes.Equal(out, buf) {
		return fmt.Errorf("%w: ill-formed sequence in %d bytes", ErrInvalidUTF8, len(buf))
	}
	return nil
}

// decodeDouble reconstructs an IEEE-754 binary64 from its hex-encoded
// little-endian byte representation: lhs is an even-length string of
// hex digit pairs, read left to right into successive bytes, and that
// byte sequence is then interpreted as a little-endian uint64 bit
// pattern.
func (tz *Tokenizer) decodeDouble(lhs string) (float64, error) {
	if len(lhs)%2 != 0 {
		return 0, fmt.Errorf("%w: odd-length hex %q", ErrInvalidDoubleHex, lhs)
	}
	raw, err := hex.DecodeString(lhs)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDoubleHex, lhs, err)
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes, got %d", ErrInvalidDoubleHex, len(raw))
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(raw[i]) << (8 * uint(i))
	}
	return math.Float64frombits(bits), nil
}
