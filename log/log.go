// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides the small leveled-logging abstraction used across
// the decoder: a Logger interface any backend can satisfy, a Helper that
// adds printf-style convenience methods, and a level Filter so a caller
// can silence Debug/Info chatter without swapping the backend.
package log

import (
	"fmt"
	"io"
	"sync"
)

// Level is a logging severity.
type Level int

// Severities, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal backend interface. Implementations receive a
// level and an alternating key/value list, the way structured loggers
// in the wild take it.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes one line per call to an io.Writer, guarded by a mutex
// since decoding is single-threaded but callers may share a logger.
type stdLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdLogger returns a Logger that writes plain lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (s *stdLogger) Log(level Level, keyvals ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "[%s] ", level)
	if err != nil {
		return err
	}
	for i := 0; i < len(keyvals); i += 2 {
		if i > 0 {
			fmt.Fprint(s.w, " ")
		}
		if i+1 < len(keyvals) {
			fmt.Fprintf(s.w, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(s.w, "%v", keyvals[i])
		}
	}
	_, err = fmt.Fprintln(s.w)
	return err
}

// filter wraps a Logger and drops anything below a minimum level.
type filter struct {
	next Logger
	min  Level
}

// FilterOption configures a Filter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level that reaches the wrapped Logger.
func FilterLevel(min Level) FilterOption {
	return func(f *filter) { f.min = min }
}

// NewFilter wraps next with a minimum-level gate.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, min: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.min {
		return nil
	}
	return f.next.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in printf-style convenience methods.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, "msg", fmt.Sprintf(format, args...))
}

// Debugf logs at Debug.
func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }

// Infof logs at Info.
func (h *Helper) Infof(format string, args ...interface{}) { h.log(LevelInfo, format, args...) }

// Warnf logs at Warn.
func (h *Helper) Warnf(format string, args ...interface{}) { h.log(LevelWarn, format, args...) }

// Errorf logs at Error.
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }
