// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// Source memory-maps a .xcactivitylog payload file and gunzips it on
// the fly, producing the already-decompressed byte stream NewTokenizer
// and NewDecoder expect. Gzip framing and file I/O sit outside the core
// decoder; this is the thin collaborator that bridges a real file on
// disk to that core.
type Source struct {
	f    *os.File
	data mmap.MMap
	gz   *gzip.Reader
}

// Open memory-maps name and wraps it in a gzip reader.
func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, fmt.Errorf("xcactivitylog: opening gzip stream: %w", err)
	}

	return &Source{f: f, data: data, gz: gz}, nil
}

// Read satisfies io.Reader by pulling from the gzip stream.
func (s *Source) Read(p []byte) (int, error) {
	return s.gz.Read(p)
}

// Close releases the gzip reader, the memory mapping, and the
// underlying file, in that order, returning the first error
// encountered.
func (s *Source) Close() error {
	err := s.gz.Close()
	if uerr := s.data.Unmap(); err == nil {
		err = uerr
	}
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}
