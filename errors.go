// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import "errors"

// Errors returned by the tokenizer and the object reconstructor. Each one
// is wrapped with positional context by the caller that detects it.
var (
	// ErrUnknownSigil is returned by Tokenizer.Next for a token kind that
	// has no case in its switch. The scanner appends every byte that is not
	// a sigil to the left-hand side, so a stray byte surfaces as the error
	// of the token it ends up in (e.g. ErrNonNumericLHS), not as this one.
	ErrUnknownSigil = errors.New("xcactivitylog: unknown token sigil")

	// ErrNonNumericLHS is returned when a sigil requiring a decimal
	// left-hand side (Int, String, ClassName, ClassInstance, Array, Json)
	// is preceded by a left-hand side that does not parse as a decimal
	// integer.
	ErrNonNumericLHS = errors.New("xcactivitylog: non-numeric left-hand side")

	// ErrNonEmptyNullLHS is returned when a Null sigil ('-') is preceded
	// by a non-empty left-hand side.
	ErrNonEmptyNullLHS = errors.New("xcactivitylog: null token has non-empty left-hand side")

	// ErrInvalidDoubleHex is returned when a Double token's left-hand
	// side is not valid hexadecimal, or has odd length.
	ErrInvalidDoubleHex = errors.New("xcactivitylog: invalid hex-encoded double")

	// ErrInvalidUTF8 is returned when a String, ClassName, or Json
	// payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("xcactivitylog: invalid UTF-8 in named payload")

	// ErrUnexpectedEOF is returned when the stream ends in the middle of
	// a token, its length-prefixed payload, or the SLF0 header.
	ErrUnexpectedEOF = errors.New("xcactivitylog: unexpected end of stream")

	// ErrUnexpectedTokenKind is returned by a token conversion, or by the
	// reconstructor, when the token in hand does not match the kind a
	// schema slot requires.
	ErrUnexpectedTokenKind = errors.New("xcactivitylog: unexpected token kind for slot")

	// ErrClassIndexOutOfRange is returned when a ClassInstance token
	// references a registry position that has not been declared yet.
	ErrClassIndexOutOfRange = errors.New("xcactivitylog: class-instance index out of range")

	// ErrUnknownClassName is returned when a ClassInstance resolves to a
	// class name outside the closed set this decoder understands, either
	// at top level or at a document-location dispatch point.
	ErrUnknownClassName = errors.New("xcactivitylog: unknown class name")

	// ErrRecursionDepthExceeded is returned when decoding a nested
	// section or message would exceed Options.MaxRecursionDepth.
	ErrRecursionDepthExceeded = errors.New("xcactivitylog: recursion depth exceeded")

	// ErrTokenStreamExhausted is not returned by any function in this
	// package. A schema slot that meets the end of the stream receives the
	// tokenizer's io.EOF, and Decoder.Next passes that io.EOF on to its
	// caller.
	ErrTokenStreamExhausted = errors.New("xcactivitylog: token stream exhausted")
)
