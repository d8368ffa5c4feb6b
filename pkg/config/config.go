// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultPreviewLength is how many characters of the result the preview shows
	DefaultPreviewLength = 200
	// DefaultEllipsis marks a truncated preview
	DefaultEllipsis = "..."

	appName = "textmod"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool

	// Extension is the file extension searched for, e.g. ".hcl"
	Extension() string
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser

	// searchConfigFile locates a file relative to the XDG config directories
	searchConfigFile = xdg.SearchConfigFile
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds presentation settings. Every field is optional.
type Config struct {
	PreviewLength int    `json:"preview_length,omitempty" yaml:"preview_length,omitempty" toml:"preview_length,omitempty" hcl:"preview_length,optional"`
	Ellipsis      string `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty" toml:"ellipsis,omitempty" hcl:"ellipsis,optional"`
	NoColor       bool   `json:"no_color,omitempty" yaml:"no_color,omitempty" toml:"no_color,omitempty" hcl:"no_color,optional"`
	NoBanner      bool   `json:"no_banner,omitempty" yaml:"no_banner,omitempty" toml:"no_banner,omitempty" hcl:"no_banner,optional"`

	location string
}

// 🏭 Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.PreviewLength == 0 {
		cfg.PreviewLength = DefaultPreviewLength
	}
	if cfg.Ellipsis == "" {
		cfg.Ellipsis = DefaultEllipsis
	}
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.PreviewLength < 0 {
		return errors.Errorf("preview_length must not be negative, got %d", cfg.PreviewLength)
	}
	cfg.applyDefaults()
	return nil
}

// Location is the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.location
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("preview=%d ellipsis=%q color=%t banner=%t (%s)", cfg.PreviewLength, cfg.Ellipsis, !cfg.NoColor, !cfg.NoBanner, src)
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, fsys afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	return cfg, nil
}

// 🔎 Resolve loads explicit when set; otherwise it searches the XDG config
// directories for textmod/config.<ext> and falls back to Default.
func Resolve(ctx context.Context, fsys afero.Fs, explicit string) (*Config, error) {
	if explicit != "" {
		return Load(ctx, fsys, explicit)
	}

	for _, p := range parsers {
		path, err := searchConfigFile(filepath.Join(appName, "config"+p.Extension()))
		if err != nil {
			continue
		}
		return Load(ctx, fsys, path)
	}

	zerolog.Ctx(ctx).Debug().Msg("no config file found, using defaults")
	return Default(), nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
