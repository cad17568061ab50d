// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package config loads the optional TOML configuration file accepted by
// the command-line surface, covering the decoder knobs SPEC_FULL's
// ambient stack calls for: recursion depth, UTF-8 strictness, and
// logging verbosity.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/suzumenobu/xcactivitylog/log"
)

// Config is the on-disk shape of xcactivitylog.toml.
type Config struct {
	Decode struct {
		MaxRecursionDepth           int  `toml:"max_recursion_depth"`
		RelaxedUTF8                 bool `toml:"relaxed_utf8"`
		RejectUnknownTrailingFields bool `toml:"reject_unknown_trailing_fields"`
	} `toml:"decode"`

	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load reads and decodes the TOML file at path.
func Load(path string) (Config, error) {
	var cfg Config
	blob, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(blob), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LogLevel parses the configured level, defaulting to Warn on an empty
// or unrecognized value.
func (c Config) LogLevel() log.Level {
	switch c.Log.Level {
	case "debug":
		return log.LevelDebug
	case "info":
		return log.LevelInfo
	case "error":
		return log.LevelError
	default:
		return log.LevelWarn
	}
}
