// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

// UnitTestSection is an IDEActivityLogUnitTestSection. The source
// decodes its six slots as opaque; this implementation follows suit and
// simply discards them to keep the stream aligned, per §9's note that
// either choice is conformant.
type UnitTestSection struct{}

func (u *UnitTestSection) isObject() {}

// decodeUnitTestSection consumes the ClassInstance token plus the six
// slots that follow, discarding all of them.
func decodeUnitTestSection(d *Decoder) (*UnitTestSection, error) {
	if _, err := d.src.next(); err != nil { // the ClassInstance token itself
		return nil, err
	}
	for i := 0; i < 6; i++ {
		if _, err := d.src.next(); err != nil {
			return nil, err
		}
	}
	return &UnitTestSection{}, nil
}
