// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Token holds.
type Kind int

// The eight wire token kinds, one per sigil in the SLF0 framing.
const (
	KindInt Kind = iota
	KindDouble
	KindString
	KindClassName
	KindClassInstance
	KindJSON
	KindArray
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindClassName:
		return "class_name"
	case KindClassInstance:
		return "class_instance"
	case KindJSON:
		return "json"
	case KindArray:
		return "array"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Token is the tagged union produced by the tokenizer: exactly one of an
// unsigned integer, a float64, two flavors of text (String and
// ClassName), a JSON blob, a 1-based class-registry reference, an array
// element count, or Null. Only one field is meaningful at a time,
// selected by Kind.
type Token struct {
	Kind Kind

	u    uint64
	f    float64
	text string
}

// NewIntToken builds an Int token.
func NewIntToken(v uint64) Token { return Token{Kind: KindInt, u: v} }

// NewDoubleToken builds a Double token.
func NewDoubleToken(v float64) Token { return Token{Kind: KindDouble, f: v} }

// NewStringToken builds a String token.
func NewStringToken(v string) Token { return Token{Kind: KindString, text: v} }

// NewClassNameToken builds a ClassName token.
func NewClassNameToken(v string) Token { return Token{Kind: KindClassName, text: v} }

// NewClassInstanceToken builds a ClassInstance token; index is 1-based.
func NewClassInstanceToken(index uint64) Token { return Token{Kind: KindClassInstance, u: index} }

// NewJSONToken builds a Json token holding the raw, unparsed text.
func NewJSONToken(v string) Token { return Token{Kind: KindJSON, text: v} }

// NewArrayToken builds an Array header token; count is the number of
// elements that follow as subsequent top-level tokens.
func NewArrayToken(count uint64) Token { return Token{Kind: KindArray, u: count} }

// NewNullToken builds a Null token.
func NewNullToken() Token { return Token{Kind: KindNull} }

// String renders the token's textual projection, used by the CSV
// exporter and by error messages: decimal for Int/ClassInstance/Array,
// default float formatting for Double, raw text for String/ClassName/Json,
// and the literal "null" for Null.
func (t Token) String() string {
	switch t.Kind {
	case KindInt, KindClassInstance, KindArray:
		return strconv.FormatUint(t.u, 10)
	case KindDouble:
		return strconv.FormatFloat(t.f, 'g', -1, 64)
	case KindString, KindClassName, KindJSON:
		return t.text
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// conversionError reports a fallible Token projection that failed; it
// names the token's actual kind and the type the caller wanted.
type conversionError struct {
	from Kind
	to   string
}

func (e *conversionError) Error() string {
	return fmt.Sprintf("%v: cannot convert %s token to %s", ErrUnexpectedTokenKind, e.from, e.to)
}

func (e *conversionError) Unwrap() error { return ErrUnexpectedTokenKind }

func convErr(from Kind, to string) error { return &conversionError{from: from, to: to} }

// Uint64 requires an Int token.
func (t Token) Uint64() (uint64, error) {
	if t.Kind != KindInt {
		return 0, convErr(t.Kind, "uint64")
	}
	return t.u, nil
}

// Int32 requires an Int token, truncated to 32 bits the way the source
// schema does when a slot is declared i32.
func (t Token) Int32() (int32, error) {
	if t.Kind != KindInt {
		return 0, convErr(t.Kind, "int32")
	}
	return int32(t.u), nil
}

// Int8 requires an Int token, truncated to 8 bits.
func (t Token) Int8() (int8, error) {
	if t.Kind != KindInt {
		return 0, convErr(t.Kind, "int8")
	}
	return int8(t.u), nil
}

// Bool requires an Int token; true iff the value is non-zero.
func (t Token) Bool() (bool, error) {
	if t.Kind != KindInt {
		return false, convErr(t.Kind, "bool")
	}
	return t.u != 0, nil
}

// Float64 requires a Double token.
func (t Token) Float64() (float64, error) {
	if t.Kind != KindDouble {
		return 0, convErr(t.Kind, "float64")
	}
	return t.f, nil
}

// Str requires a String token. ClassName tokens are a distinct kind and
// do not satisfy this projection, matching the source type system.
func (t Token) Str() (string, error) {
	if t.Kind != KindString {
		return "", convErr(t.Kind, "string")
	}
	return t.text, nil
}

// Index requires an Array or ClassInstance token and returns its count
// or 1-based index as an int, the way the source accepts either for a
// usize slot.
func (t Token) Index() (int, error) {
	if t.Kind != KindArray && t.Kind != KindClassInstance {
		return 0, convErr(t.Kind, "index")
	}
	return int(t.u), nil
}

// OptUint64 accepts an Int token as Some, Null as None, anything else
// is an error.
func (t Token) OptUint64() (*uint64, error) {
	switch t.Kind {
	case KindInt:
		v := t.u
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional uint64")
	}
}

// OptFloat64 accepts Double as Some, Null as None.
func (t Token) OptFloat64() (*float64, error) {
	switch t.Kind {
	case KindDouble:
		v := t.f
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional float64")
	}
}

// OptStr accepts String as Some, Null as None.
func (t Token) OptStr() (*string, error) {
	switch t.Kind {
	case KindString:
		v := t.text
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional string")
	}
}

// OptBool accepts Int as Some(nonzero), Null as None.
func (t Token) OptBool() (*bool, error) {
	switch t.Kind {
	case KindInt:
		v := t.u != 0
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional bool")
	}
}

// OptIndex accepts Array as Some(count), Null as None. Used for the
// count-prefixed-sequence slots, which default to an empty sequence
// when absent.
func (t Token) OptIndex() (*int, error) {
	switch t.Kind {
	case KindArray:
		v := int(t.u)
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional index")
	}
}

// OptInt32 accepts Int as Some, Null as None.
func (t Token) OptInt32() (*int32, error) {
	switch t.Kind {
	case KindInt:
		v := int32(t.u)
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional int32")
	}
}

// OptInt8 accepts Int as Some, Null as None.
func (t Token) OptInt8() (*int8, error) {
	switch t.Kind {
	case KindInt:
		v := int8(t.u)
		return &v, nil
	case KindNull:
		return nil, nil
	default:
		return nil, convErr(t.Kind, "optional int8")
	}
}

// JSON returns the raw JSON text; only valid for Json tokens. Parsing
// into a generic value is left to the caller (attachment decoding uses
// encoding/json.RawMessage to defer parsing until consumed).
func (t Token) JSON() (string, error) {
	if t.Kind != KindJSON {
		return "", convErr(t.Kind, "json")
	}
	return t.text, nil
}
