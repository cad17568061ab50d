// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

// Message is an IDEActivityLogMessage (or, decoded identically, an
// IDEDiagnosticActivityLogMessage): a diagnostic or informational
// message attached to a section, self-recursive via SubMessages.
type Message struct {
	Title                      string
	ShortTitle                 *string
	TimeEmitted                uint64
	RangeEndInSectionText      uint64
	RangeStartInSectionText    uint64
	SubMessages                []*Message
	Severity                   int32
	Type                       *string
	Location                   DocumentLocation
	CategoryIdent              *string
	SecondaryLocations         []DocumentLocation
	AdditionalDescription      *string
}

func (m *Message) isObject() {}

// decodeMessage reads the IDEActivityLogMessage schema in slot order.
func decodeMessage(d *Decoder) (*Message, error) {
	if err := d.enterRecursion(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	if _, err := d.src.next(); err != nil { // the ClassInstance token itself
		return nil, err
	}

	title, err := nextStr(d)
	if err != nil {
		return nil, err
	}
	shortTitle, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	timeEmitted, err := nextUint64(d)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := nextUint64(d)
	if err != nil {
		return nil, err
	}
	rangeStart, err := nextUint64(d)
	if err != nil {
		return nil, err
	}
	subMessagesSize, err := nextOptIndex(d)
	if err != nil {
		return nil, err
	}
	subMessages, err := deserVec(d, subMessagesSize, decodeMessage)
	if err != nil {
		return nil, err
	}
	severity, err := nextInt32(d)
	if err != nil {
		return nil, err
	}
	msgType, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	location, err := deserExact(d, decodeDocumentLocation)
	if err != nil {
		return nil, err
	}
	categoryIdent, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	secondaryLocationsSize, err := nextOptIndex(d)
	if err != nil {
		return nil, err
	}
	secondaryLocations, err := deserVec(d, secondaryLocationsSize, decodeDocumentLocation)
	if err != nil {
		return nil, err
	}
	additionalDescription, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}

	return &Message{
		Title:                   title,
		ShortTitle:              shortTitle,
		TimeEmitted:             timeEmitted,
		RangeEndInSectionText:   rangeEnd,
		RangeStartInSectionText: rangeStart,
		SubMessages:             subMessages,
		Severity:                severity,
		Type:                    msgType,
		Location:                location,
		CategoryIdent:           categoryIdent,
		SecondaryLocations:      secondaryLocations,
		AdditionalDescription:   additionalDescription,
	}, nil
}
