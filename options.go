// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package xcactivitylog

import (
	"os"

	"github.com/suzumenobu/xcactivitylog/log"
)

// DefaultMaxRecursionDepth bounds how deep sub_sections/sub_messages
// recursion is allowed to go before the decoder
// gives up with ErrRecursionDepthExceeded instead of overflowing the
// Go call stack on a pathological or corrupted stream.
const DefaultMaxRecursionDepth = 4096

// Options configures a Decoder, mirroring the way the teacher's own
// Options struct carries parse limits and an injectable logger.
type Options struct {
	// MaxRecursionDepth caps nesting of sections and messages
	// (sub_sections/sub_messages). Zero means DefaultMaxRecursionDepth.
	MaxRecursionDepth int

	// RelaxedUTF8 validates String/ClassName/Json payloads with the
	// standard library's utf8.Valid instead of the
	// golang.org/x/text/encoding/unicode decoder. Both reject the same
	// ill-formed input, overlong encodings and surrogate halves included.
	// Off by default.
	RelaxedUTF8 bool

	// RejectUnknownTrailingFields turns a partially-matched trailing
	// field probe on IDEActivityLogSection into a hard error instead of
	// silently stopping the probe. Off by default, since spec.md
	// declares the probe non-failing by design.
	RejectUnknownTrailingFields bool

	// Logger receives Debug/Info/Warn/Error diagnostics during decode.
	// A filtered stderr logger at Warn is used when nil.
	Logger log.Logger
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.MaxRecursionDepth <= 0 {
		out.MaxRecursionDepth = DefaultMaxRecursionDepth
	}
	if out.Logger == nil {
		out.Logger = log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(log.LevelWarn))
	}
	return &out
}
