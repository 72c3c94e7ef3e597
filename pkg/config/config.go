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
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/retone/pkg/record"
	"gitlab.com/tozd/go/errors"
)

const (
	MatchKey  = "key"  // replace by record id and title
	MatchBody = "body" // replace the first occurrence of the original body

	DefaultModel           = "gemini-2.0-flash-exp"
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 2048
	DefaultAPIKeyEnv       = "GEMINI_API_KEY"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data into out
	Parse(ctx context.Context, filename string, data []byte, out any) error

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
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

// 🤖 TransformArgs configures the text-generation call
type TransformArgs struct {
	Model           string   `json:"model,omitempty" yaml:"model,omitempty" hcl:"model,optional"`
	Temperature     *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty" hcl:"temperature,optional"`
	MaxOutputTokens int      `json:"max_output_tokens,omitempty" yaml:"max_output_tokens,omitempty" hcl:"max_output_tokens,optional"`
	Guidelines      string   `json:"guidelines,omitempty" yaml:"guidelines,omitempty" hcl:"guidelines,optional"`
	GuidelinesFile  string   `json:"guidelines_file,omitempty" yaml:"guidelines_file,omitempty" hcl:"guidelines_file,optional"`
	APIKeyEnv       string   `json:"api_key_env,omitempty" yaml:"api_key_env,omitempty" hcl:"api_key_env,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Input     string         `json:"input" yaml:"input" hcl:"input"`
	Output    string         `json:"output" yaml:"output" hcl:"output"`
	Match     string         `json:"match,omitempty" yaml:"match,omitempty" hcl:"match,optional"`
	Include   []string       `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude   []string       `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Syntax    *record.Syntax `json:"syntax,omitempty" yaml:"syntax,omitempty" hcl:"syntax,block"`
	Transform *TransformArgs `json:"transform,omitempty" yaml:"transform,omitempty" hcl:"transform,block"`
	Overrides []Override     `json:"overrides,omitempty" yaml:"overrides,omitempty" hcl:"override,block"`

	location string // path of the file this config was loaded from
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	var cfg Config
	if err := decodeFile(ctx, path, &cfg); err != nil {
		return nil, err
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return &cfg, nil
}

// decodeFile reads path and decodes it with the parser registered for its extension
func decodeFile(ctx context.Context, path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return errors.Errorf("no parser found for file: %s", path)
	}

	if err := p.Parse(ctx, path, data, out); err != nil {
		return errors.Errorf("parsing config: %w", err)
	}
	return nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Input == "" {
		return errors.Errorf("input is required")
	}
	if cfg.Output == "" {
		return errors.Errorf("output is required")
	}

	// Clean up paths
	cfg.Input = cfg.resolve(cfg.Input)
	cfg.Output = cfg.resolve(cfg.Output)

	if sameFile(cfg.Input, cfg.Output) {
		return errors.Errorf("output must differ from input: %s", cfg.Input)
	}

	// Set defaults
	if cfg.Match == "" {
		cfg.Match = MatchKey
	}
	if cfg.Match != MatchKey && cfg.Match != MatchBody {
		return errors.Errorf("match must be %q or %q, got %q", MatchKey, MatchBody, cfg.Match)
	}

	syntax := record.DefaultSyntax()
	if cfg.Syntax != nil {
		syntax = cfg.Syntax.WithDefaults()
	}
	if err := syntax.Validate(); err != nil {
		return errors.Errorf("syntax: %w", err)
	}
	cfg.Syntax = &syntax

	if cfg.Transform == nil {
		cfg.Transform = &TransformArgs{}
	}
	if err := cfg.Transform.validate(); err != nil {
		return errors.Errorf("transform: %w", err)
	}
	if cfg.Transform.GuidelinesFile != "" {
		cfg.Transform.GuidelinesFile = cfg.resolve(cfg.Transform.GuidelinesFile)
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid id pattern %q", pattern)
		}
	}

	if err := validateOverrides(cfg.Overrides); err != nil {
		return err
	}
	for i := range cfg.Overrides {
		if cfg.Overrides[i].BodyFile != "" {
			cfg.Overrides[i].BodyFile = cfg.resolve(cfg.Overrides[i].BodyFile)
		}
	}

	return nil
}

func (t *TransformArgs) validate() error {
	if t.Model == "" {
		t.Model = DefaultModel
	}
	if t.Temperature == nil {
		temp := DefaultTemperature
		t.Temperature = &temp
	}
	if *t.Temperature < 0 || *t.Temperature > 2 {
		return errors.Errorf("temperature must be between 0 and 2, got %v", *t.Temperature)
	}
	if t.MaxOutputTokens == 0 {
		t.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if t.MaxOutputTokens < 0 {
		return errors.Errorf("max_output_tokens must be positive, got %d", t.MaxOutputTokens)
	}
	if t.Guidelines != "" && t.GuidelinesFile != "" {
		return errors.Errorf("guidelines and guidelines_file are mutually exclusive")
	}
	if t.APIKeyEnv == "" {
		t.APIKeyEnv = DefaultAPIKeyEnv
	}
	return nil
}

// 📖 LoadGuidelines returns the configured tone guide, or "" when none is set
func (t *TransformArgs) LoadGuidelines() (string, error) {
	if t.GuidelinesFile == "" {
		return t.Guidelines, nil
	}
	data, err := os.ReadFile(t.GuidelinesFile)
	if err != nil {
		return "", errors.Errorf("reading guidelines file: %w", err)
	}
	return string(data), nil
}

// Dir returns the directory relative paths are resolved against
func (cfg *Config) Dir() string {
	if cfg.location == "" {
		return "."
	}
	return filepath.Dir(cfg.location)
}

// resolve makes p relative to the config file unless it is absolute
func (cfg *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(cfg.Dir(), p))
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	model := DefaultModel
	if cfg.Transform != nil && cfg.Transform.Model != "" {
		model = cfg.Transform.Model
	}
	return fmt.Sprintf("%s -> %s (match=%s, model=%s, overrides=%d)", cfg.Input, cfg.Output, cfg.Match, model, len(cfg.Overrides))
}
