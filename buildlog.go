// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

// BuildLog is the IDECommandLineBuildLog root container of a
// command-line build's activity log.
type BuildLog struct {
	SectionType           int8
	DomainType            string
	Title                 string
	Signature             string
	TimeStartedRecording  float64
	TimeStoppedRecording  float64
	SubSections           []*Section
}

func (b *BuildLog) isObject() {}

// decodeBuildLog reads the IDECommandLineBuildLog schema: the
// ClassInstance token, the section type and three header strings, the two
// recording timestamps, and a count-prefixed sub_sections array of
// full IDEActivityLogSection instances.
func decodeBuildLog(d *Decoder) (*BuildLog, error) {
	if _, err := d.src.next(); err != nil { // consume the ClassInstance itself
		return nil, err
	}

	sectionType, err := nextInt8(d)
	if err != nil {
		return nil, err
	}
	domainType, err := nextStr(d)
	if err != nil {
		return nil, err
	}
	title, err := nextStr(d)
	if err != nil {
		return nil, err
	}
	signature, err := nextStr(d)
	if err != nil {
		return nil, err
	}
	started, err := nextFloat64(d)
	if err != nil {
		return nil, err
	}
	stopped, err := nextFloat64(d)
	if err != nil {
		return nil, err
	}
	subSectionsSize, err := nextOptIndex(d)
	if err != nil {
		return nil, err
	}
	subSections, err := deserVec(d, subSectionsSize, decodeSection)
	if err != nil {
		return nil, err
	}

	return &BuildLog{
		SectionType:          sectionType,
		DomainType:           domainType,
		Title:                title,
		Signature:            signature,
		TimeStartedRecording: started,
		TimeStoppedRecording: stopped,
		SubSections:          subSections,
	}, nil
}
