// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"errors"
	"fmt"
	"io"

	"github.com/suzumenobu/xcactivitylog/log"
)

// Object is the sum type over every class the reconstructor can yield,
// both at the top level and wherever a nested class-instance is
// resolved: build logs, sections and their subclasses, messages,
// attachments, the unit-test section, and document locations.
type Object interface {
	isObject()
}

// tokenSource is a one-token lookahead adapter over a Tokenizer, the
// "peekable" iterator the reconstructor's primitives are specified
// against.
type tokenSource struct {
	tz      *Tokenizer
	peeked  Token
	hasPeek bool
}

func newTokenSource(tz *Tokenizer) *tokenSource {
	return &tokenSource{tz: tz}
}

func (s *tokenSource) peek() (Token, error) {
	if !s.hasPeek {
		tok, err := s.tz.Next()
		if err != nil {
			return Token{}, err
		}
		s.peeked = tok
		s.hasPeek = true
	}
	return s.peeked, nil
}

func (s *tokenSource) next() (Token, error) {
	if s.hasPeek {
		s.hasPeek = false
		return s.peeked, nil
	}
	return s.tz.Next()
}

// Decoder is the schema-directed object reconstructor: it owns a
// tokenSource, the class-name registry built up as ClassName tokens are
// seen, and the recursion-depth budget. A Decoder is single-use,
// single-threaded, and not safe for concurrent calls to Next.
type Decoder struct {
	src                   *tokenSource
	registry              classRegistry
	maxDepth              int
	depth                 int
	rejectUnknownTrailing bool
	log                   *log.Helper
}

// NewDecoder wraps r (the already-decompressed SLF0 payload) in a
// Tokenizer and returns a Decoder ready to yield top-level objects via
// Next.
func NewDecoder(r io.Reader, opts *Options) (*Decoder, error) {
	opts = opts.withDefaults()
	tz, err := NewTokenizer(r, opts)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		src:                   newTokenSource(tz),
		maxDepth:              opts.MaxRecursionDepth,
		rejectUnknownTrailing: opts.RejectUnknownTrailingFields,
		log:                   log.NewHelper(opts.Logger),
	}, nil
}

// enterRecursion bumps the depth counter, failing if it would exceed
// the configured maximum; the caller must defer d.depth--.
func (d *Decoder) enterRecursion() error {
	d.depth++
	if d.depth > d.maxDepth {
		return fmt.Errorf("%w: depth %d exceeds max %d", ErrRecursionDepthExceeded, d.depth, d.maxDepth)
	}
	return nil
}

// Next drives the top-level loop described by the object reconstructor:
// ClassName tokens register and are skipped, a ClassInstance resolves
// its class name and dispatches to the matching schema, end-of-stream
// returns io.EOF, and any other token at top level is logged and
// skipped.
func (d *Decoder) Next() (Object, error) {
	for {
		tok, err := d.src.peek()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, err
		}

		switch tok.Kind {
		case KindClassName:
			if _, err := d.src.next(); err != nil {
				return nil, err
			}
			d.registry.push(tok.text)
			continue

		case KindClassInstance:
			index, err := tok.Index()
			if err != nil {
				return nil, err
			}
			className, err := d.registry.lookup(index)
			if err != nil {
				return nil, err
			}
			d.log.Debugf("got instance of %s", className)
			return d.dispatch(className)

		default:
			d.log.Warnf("unexpected top-level token kind %v, skipping", tok.Kind)
			if _, err := d.src.next(); err != nil {
				return nil, err
			}
			continue
		}
	}
}

// dispatch routes a resolved top-level class name to its schema. The
// ClassInstance token itself has not yet been consumed; every decode
// function below consumes it as its first step.
func (d *Decoder) dispatch(className string) (Object, error) {
	switch className {
	case "IDECommandLineBuildLog":
		return decodeBuildLog(d)
	case "IDEActivityLogSection", "IDEActivityLogMajorGroupSection":
		return decodeSection(d)
	case "IDEActivityLogCommandInvocationSection":
		return decodeCommandInvocationSection(d)
	case "IDEActivityLogMessage", "IDEDiagnosticActivityLogMessage":
		return decodeMessage(d)
	case "IDEActivityLogSectionAttachment":
		return decodeAttachment(d)
	case "IDEActivityLogUnitTestSection":
		return decodeUnitTestSection(d)
	case "DVTDocumentLocation", "DVTTextDocumentLocation", "DVTMemberDocumentLocation":
		return decodeDocumentLocation(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClassName, className)
	}
}

// deserExact is the deser_exact<T> primitive: it consumes any leading
// ClassName tokens (registering each), then expects either a
// ClassInstance, which it hands to decode, or a Null/Json token, which
// it consumes and reports as absent by returning the zero value of T.
func deserExact[T comparable](d *Decoder, decode func(d *Decoder) (T, error)) (T, error) {
	var zero T
	for {
		tok, err := d.src.peek()
		if err != nil {
			return zero, err
		}
		if tok.Kind != KindClassName {
			break
		}
		if _, err := d.src.next(); err != nil {
			return zero, err
		}
		d.registry.push(tok.text)
	}

	tok, err := d.src.peek()
	if err != nil {
		return zero, err
	}
	switch tok.Kind {
	case KindNull, KindJSON:
		if _, err := d.src.next(); err != nil {
			return zero, err
		}
		return zero, nil
	case KindClassInstance:
		return decode(d)
	default:
		return zero, fmt.Errorf("%w: %v at deser_exact", ErrUnexpectedTokenKind, tok.Kind)
	}
}

// deserVec is the deser_vec<T>(n) primitive: it calls deserExact up to
// n times, stopping as soon as one call reports absent.
func deserVec[T comparable](d *Decoder, n int, decode func(d *Decoder) (T, error)) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	result := []T{}
	for i := 0; i < n; i++ {
		v, err := deserExact(d, decode)
		if err != nil {
			return nil, err
		}
		if v == zero {
			break
		}
		result = append(result, v)
	}
	return result, nil
}
