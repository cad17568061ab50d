// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suzumenobu/xcactivitylog/log"
)

func TestLoadParsesDecodeAndLogSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xcactivitylog.toml")
	body := `
[decode]
max_recursion_depth = 128
relaxed_utf8 = true
reject_unknown_trailing_fields = true

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Decode.MaxRecursionDepth != 128 {
		t.Errorf("MaxRecursionDepth = %d, want 128", cfg.Decode.MaxRecursionDepth)
	}
	if !cfg.Decode.RelaxedUTF8 {
		t.Error("RelaxedUTF8 = false, want true")
	}
	if !cfg.Decode.RejectUnknownTrailingFields {
		t.Error("RejectUnknownTrailingFields = false, want true")
	}
	if cfg.LogLevel() != log.LevelDebug {
		t.Errorf("LogLevel() = %v, want LevelDebug", cfg.LogLevel())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load err = nil, want non-nil")
	}
}

func TestLogLevelDefaultsToWarn(t *testing.T) {
	var cfg Config
	if got := cfg.LogLevel(); got != log.LevelWarn {
		t.Errorf("LogLevel() = %v, want LevelWarn", got)
	}
}
