// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the kanjidict command configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

var errInvalid = errors.New("invalid config")

// Config is the kanjidict command configuration.
type Config struct {
	// Input is the path of the glossary markup document.
	Input string `yaml:"input" env:"KANJIDICT_INPUT"`

	// Output is the base path of the exported files. Files are written to
	// Output + ".tsv", Output + ".json" and the directory Output.
	Output string `yaml:"output" env:"KANJIDICT_OUTPUT" env-default:"output/dictionary"`

	// XLSX enables writing Output + ".xlsx".
	XLSX bool `yaml:"xlsx" env:"KANJIDICT_XLSX"`

	StarDict StarDictConfig `yaml:"stardict"`
	Images   ImagesConfig   `yaml:"images"`
	Log      LogConfig      `yaml:"log"`
}

// StarDictConfig configures the StarDict export.
type StarDictConfig struct {
	Bookname    string `yaml:"bookname"    env:"KANJIDICT_BOOKNAME"    env-default:"Japanese Dictionary"`
	Author      string `yaml:"author"      env:"KANJIDICT_AUTHOR"      env-default:"Parser"`
	Description string `yaml:"description" env:"KANJIDICT_DESCRIPTION" env-default:"Japanese dictionary with images"`
	DictZip     bool   `yaml:"dictzip"     env:"KANJIDICT_DICTZIP"`
	SortIndex   bool   `yaml:"sort_index"  env:"KANJIDICT_SORT_INDEX"`
	Synonyms    bool   `yaml:"synonyms"    env:"KANJIDICT_SYNONYMS"`
}

// ImagesConfig configures image handling.
type ImagesConfig struct {
	// Inline writes Output + ".images.json" with base64 encoded images.
	Inline bool `yaml:"inline" env:"KANJIDICT_IMAGES_INLINE"`

	// Copy copies images into the images directory next to Output.
	Copy bool `yaml:"copy" env:"KANJIDICT_IMAGES_COPY"`

	// Root resolves relative image paths. Empty means the directory of the
	// input document.
	Root string `yaml:"root" env:"KANJIDICT_IMAGES_ROOT"`

	Workers int `yaml:"workers" env:"KANJIDICT_IMAGES_WORKERS" env-default:"4"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"  env:"KANJIDICT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"KANJIDICT_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path
// loads ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("%w: output is empty", errInvalid)
	}
	if c.Images.Workers < 1 {
		return fmt.Errorf("%w: images.workers must be positive, got %d", errInvalid, c.Images.Workers)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", errInvalid, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", errInvalid, c.Log.Level)
	}
	return nil
}
