// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import "fmt"

// DocumentLocation is the polymorphic DVTDocumentLocation family: the
// concrete variant is chosen by the class name carried in the
// ClassInstance token, not by any wire discriminant field.
type DocumentLocation interface {
	isObject()
	isDocumentLocation()
	// Base returns the two slots every variant shares.
	Base() BaseDocumentLocation
}

// BaseDocumentLocation holds the slots common to every DVTDocumentLocation
// variant.
type BaseDocumentLocation struct {
	DocumentURLString string
	Timestamp         float64
}

func (l *BaseDocumentLocation) isObject()           {}
func (l *BaseDocumentLocation) isDocumentLocation()  {}
func (l *BaseDocumentLocation) Base() BaseDocumentLocation { return *l }

// TextDocumentLocation is the DVTTextDocumentLocation variant: a base
// location plus a character/line range into the referenced document.
// The source decodes these seven trailing slots as opaque; this
// implementation materializes them rather than discarding them.
type TextDocumentLocation struct {
	BaseDocumentLocation
	StartingLineNumber   uint64
	StartingColumnNumber uint64
	EndingLineNumber     uint64
	EndingColumnNumber   uint64
	CharacterRangeEnd    uint64
	CharacterRangeStart  uint64
	LocationEncoding     uint64
}

func (l *TextDocumentLocation) isObject()          {}
func (l *TextDocumentLocation) isDocumentLocation() {}
func (l *TextDocumentLocation) Base() BaseDocumentLocation { return l.BaseDocumentLocation }

// MemberDocumentLocation is the DVTMemberDocumentLocation variant: a
// base location plus the name of the member it points into.
type MemberDocumentLocation struct {
	BaseDocumentLocation
	Member string
}

func (l *MemberDocumentLocation) isObject()          {}
func (l *MemberDocumentLocation) isDocumentLocation() {}
func (l *MemberDocumentLocation) Base() BaseDocumentLocation { return l.BaseDocumentLocation }

// decodeDocumentLocation consumes a ClassInstance token as the class
// registry index, resolves the concrete class name, then reads the two
// shared slots and whatever variant-specific tail that class name
// requires.
func decodeDocumentLocation(d *Decoder) (DocumentLocation, error) {
	indexTok, err := d.src.next()
	if err != nil {
		return nil, err
	}
	index, err := indexTok.Index()
	if err != nil {
		return nil, err
	}
	className, err := d.registry.lookup(index)
	if err != nil {
		return nil, err
	}

	urlTok, err := d.src.next()
	if err != nil {
		return nil, err
	}
	url, err := urlTok.Str()
	if err != nil {
		return nil, err
	}
	tsTok, err := d.src.next()
	if err != nil {
		return nil, err
	}
	timestamp, err := tsTok.Float64()
	if err != nil {
		return nil, err
	}
	base := BaseDocumentLocation{DocumentURLString: url, Timestamp: timestamp}

	switch className {
	case "DVTDocumentLocation":
		return &base, nil

	case "DVTTextDocumentLocation":
		var fields [7]uint64
		for i := range fields {
			tok, err := d.src.next()
			if err != nil {
				return nil, err
			}
			v, err := tok.Uint64()
			if err != nil {
				return nil, err
			}
			fields[i] = v
		}
		return &TextDocumentLocation{
			BaseDocumentLocation: base,
			StartingLineNumber:   fields[0],
			StartingColumnNumber: fields[1],
			EndingLineNumber:     fields[2],
			EndingColumnNumber:   fields[3],
			CharacterRangeEnd:    fields[4],
			CharacterRangeStart:  fields[5],
			LocationEncoding:     fields[6],
		}, nil

	case "DVTMemberDocumentLocation":
		tok, err := d.src.next()
		if err != nil {
			return nil, err
		}
		member, err := tok.Str()
		if err != nil {
			return nil, err
		}
		return &MemberDocumentLocation{BaseDocumentLocation: base, Member: member}, nil

	default:
		return nil, fmt.Errorf("%w: %q at document-location dispatch", ErrUnknownClassName, className)
	}
}
