// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"errors"
	"fmt"
	"io"
)

// Section is an IDEActivityLogSection (or, decoded identically, an
// IDEActivityLogMajorGroupSection): a generic activity-log node that is
// self-recursive via SubSections and carries an open-ended tail of
// fields the format has grown across Xcode versions.
type Section struct {
	SectionType           int8
	DomainType            string
	Title                 string
	Signature             string
	TimeStartedRecording  float64
	TimeStoppedRecording  float64
	SubSections           []*Section
	Text                  *string
	Messages              []*Message
	WasCancelled          bool
	IsQuiet               bool
	WasFetchedFromCache   bool
	Subtitle              *string
	Location              DocumentLocation
	CommandDetailsSpec    *string
	UniqueIdentifier      *string
	LocalizedResultString *string
	XcbuildSignature      *string
	Attachments           []*Attachment

	// Unknown..Unknown9 are the undocumented trailing fields the format
	// has grown across Xcode versions. See decodeSection's probe: each
	// is present only if every prior one was, and only if attachments
	// were present at all.
	Unknown  *uint64
	Unknown1 bool
	Unknown2 bool
	Unknown3 bool
	Unknown4 *string
	Unknown5 *uint64
	Unknown6 *uint64
	Unknown7 *string
	Unknown8 *uint64
	Unknown9 *uint64
}

func (s *Section) isObject() {}

// decodeSection reads the full IDEActivityLogSection schema, recursing
// into sub_sections and messages, then the optional attachments array
// and its trailing-field probe.
func decodeSection(d *Decoder) (*Section, error) {
	if err := d.enterRecursion(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	if _, err := d.src.next(); err != nil { // the ClassInstance token itself
		return nil, err
	}

	header, err := decodeSectionHeader(d)
	if err != nil {
		return nil, err
	}

	text, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	messagesSize, err := nextOptIndex(d)
	if err != nil {
		return nil, err
	}
	messages, err := deserVec(d, messagesSize, decodeMessage)
	if err != nil {
		return nil, err
	}
	wasCancelled, err := nextBool(d)
	if err != nil {
		return nil, err
	}
	isQuiet, err := nextBool(d)
	if err != nil {
		return nil, err
	}
	wasFetchedFromCache, err := nextBool(d)
	if err != nil {
		return nil, err
	}
	subtitle, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	location, err := deserExact(d, decodeDocumentLocation)
	if err != nil {
		return nil, err
	}
	commandDetailsSpec, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	uniqueIdentifier, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	localizedResultString, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	xcbuildSignature, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}

	attachments, attachmentsFound, err := decodeOptionalAttachments(d)
	if err != nil {
		return nil, err
	}

	probeOK := attachmentsFound
	unknown, err := probeOptUint64(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown1, err := probeBool(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown2, err := probeBool(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown3, err := probeBool(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown4, err := probeOptStr(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown5, err := probeOptUint64(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown6, err := probeOptUint64(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown7, err := probeOptStr(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown8, err := probeOptUint64(d, &probeOK)
	if err != nil {
		return nil, err
	}
	unknown9, err := probeOptUint64(d, &probeOK)
	if err != nil {
		return nil, err
	}
	if attachmentsFound && !probeOK && d.rejectUnknownTrailing {
		return nil, fmt.Errorf("%w: trailing-field probe halted before unknown9", ErrUnexpectedTokenKind)
	}

	return &Section{
		SectionType:           header.sectionType,
		DomainType:            header.domainType,
		Title:                 header.title,
		Signature:             header.signature,
		TimeStartedRecording:  header.started,
		TimeStoppedRecording:  header.stopped,
		SubSections:           header.subSections,
		Text:                  text,
		Messages:              messages,
		WasCancelled:          wasCancelled,
		IsQuiet:               isQuiet,
		WasFetchedFromCache:   wasFetchedFromCache,
		Subtitle:              subtitle,
		Location:              location,
		CommandDetailsSpec:    commandDetailsSpec,
		UniqueIdentifier:      uniqueIdentifier,
		LocalizedResultString: localizedResultString,
		XcbuildSignature:      xcbuildSignature,
		Attachments:           attachments,
		Unknown:               unknown,
		Unknown1:              unknown1,
		Unknown2:              unknown2,
		Unknown3:              unknown3,
		Unknown4:              unknown4,
		Unknown5:              unknown5,
		Unknown6:              unknown6,
		Unknown7:              unknown7,
		Unknown8:              unknown8,
		Unknown9:              unknown9,
	}, nil
}

// sectionHeader is the slot prefix IDEActivityLogSection and
// IDEActivityLogCommandInvocationSection share verbatim.
type sectionHeader struct {
	sectionType int8
	domainType  string
	title       string
	signature   string
	started     float64
	stopped     float64
	subSections []*Section
}

func decodeSectionHeader(d *Decoder) (sectionHeader, error) {
	var h sectionHeader
	var err error
	if h.sectionType, err = nextInt8(d); err != nil {
		return h, err
	}
	if h.domainType, err = nextStr(d); err != nil {
		return h, err
	}
	if h.title, err = nextStr(d); err != nil {
		return h, err
	}
	if h.signature, err = nextStr(d); err != nil {
		return h, err
	}
	if h.started, err = nextFloat64(d); err != nil {
		return h, err
	}
	if h.stopped, err = nextFloat64(d); err != nil {
		return h, err
	}
	subSectionsSize, err := nextOptIndex(d)
	if err != nil {
		return h, err
	}
	if h.subSections, err = deserVec(d, subSectionsSize, decodeSection); err != nil {
		return h, err
	}
	return h, nil
}

// decodeOptionalAttachments implements the §4.4 step 10 optional tail:
// attachments are present only if the next token is an Array header.
func decodeOptionalAttachments(d *Decoder) ([]*Attachment, bool, error) {
	tok, err := d.src.peek()
	if errors.Is(err, io.EOF) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if tok.Kind != KindArray {
		return nil, false, nil
	}
	countTok, err := d.src.next()
	if err != nil {
		return nil, false, err
	}
	count, err := countTok.Index()
	if err != nil {
		return nil, false, err
	}
	attachments, err := deserVec(d, count, decodeAttachment)
	if err != nil {
		return nil, false, err
	}
	return attachments, true, nil
}

// CommandInvocationSection is an IDEActivityLogCommandInvocationSection:
// a section subclass with a reduced trailing-field set (after the shared
// header it carries only text, messages, and was_cancelled).
type CommandInvocationSection struct {
	SectionType          int8
	DomainType           string
	Title                string
	Signature            string
	TimeStartedRecording float64
	TimeStoppedRecording float64
	SubSections          []*Section
	Text                 *string
	Messages             []*Message
	WasCancelled         bool
}

func (s *CommandInvocationSection) isObject() {}

// decodeCommandInvocationSection reads the shortened schema: the shared
// header, then text, messages, and was_cancelled only.
func decodeCommandInvocationSection(d *Decoder) (*CommandInvocationSection, error) {
	if err := d.enterRecursion(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	if _, err := d.src.next(); err != nil {
		return nil, err
	}

	header, err := decodeSectionHeader(d)
	if err != nil {
		return nil, err
	}
	text, err := nextOptStr(d)
	if err != nil {
		return nil, err
	}
	messagesSize, err := nextOptIndex(d)
	if err != nil {
		return nil, err
	}
	messages, err := deserVec(d, messagesSize, decodeMessage)
	if err != nil {
		return nil, err
	}
	wasCancelled, err := nextBool(d)
	if err != nil {
		return nil, err
	}

	return &CommandInvocationSection{
		SectionType:          header.sectionType,
		DomainType:           header.domainType,
		Title:                header.title,
		Signature:            header.signature,
		TimeStartedRecording: header.started,
		TimeStoppedRecording: header.stopped,
		SubSections:          header.subSections,
		Text:                 text,
		Messages:             messages,
		WasCancelled:         wasCancelled,
	}, nil
}
