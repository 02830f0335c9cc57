// Copyright 2025 The miyuw Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the TOML configuration file of the miyuw command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// ErrConfig is the parent error for configuration errors.
var ErrConfig = errors.New("config")

const (
	// FormatText renders definitions as plain text.
	FormatText = "text"

	// FormatHTML renders definitions as annotated HTML.
	FormatHTML = "html"
)

// Config is the miyuw configuration.
type Config struct {
	// Data is the path to the vocabulary file or a directory containing it.
	Data string `toml:"data"`

	// Locale is the BCP 47 tag whose collation orders headwords.
	Locale string `toml:"locale"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Format is the output format for definitions.
	Format string `toml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Locale:   "tr",
		LogLevel: "warn",
		Format:   FormatText,
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return filepath.Join(dir, "miyuw", "config.toml"), nil
}

// Load reads the configuration file at path on top of the defaults. If
// optional is true a missing file yields the defaults.
func Load(path string, optional bool) (*Config, error) {
	c := Default()

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("%w: reading %q: %w", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %q: unknown keys: %s", ErrConfig, path, strings.Join(keys, ", "))
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := c.Tag(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatHTML:
	default:
		return fmt.Errorf("%w: invalid format %q", ErrConfig, c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level %q", ErrConfig, c.LogLevel)
	}
	return nil
}

// Tag returns the parsed locale.
func (c *Config) Tag() (language.Tag, error) {
	t, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: invalid locale %q: %w", ErrConfig, c.Locale, err)
	}
	return t, nil
}
