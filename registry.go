// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

// classRegistry is the append-only, 1-based table of class names built
// up from ClassName tokens as a stream is decoded. It is owned
// exclusively by a single Decoder and is never reentrant, matching
// spec.md's single-threaded cooperative decode model.
type classRegistry struct {
	names []string
}

// push appends name, assigning it the next 1-based position.
func (r *classRegistry) push(name string) {
	r.names = append(r.names, name)
}

// lookup resolves a 1-based index to the class name declared at that
// position. An out-of-range index is a fatal schema error: the wire
// format guarantees every ClassInstance(k) follows at least k ClassName
// declarations.
func (r *classRegistry) lookup(index int) (string, error) {
	if index < 1 || index > len(r.names) {
		return "", ErrClassIndexOutOfRange
	}
	return r.names[index-1], nil
}

// len reports the current registry size.
func (r *classRegistry) len() int {
	return len(r.names)
}
