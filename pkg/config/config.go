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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/tsfix/pkg/rules"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

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

// 📚 Config represents the complete run configuration
type Config struct {
	// Roots are the directories walked recursively for candidates
	Roots []string `json:"roots,omitempty" yaml:"roots,omitempty" hcl:"roots,optional"`

	// Suffixes filter files found under Roots
	Suffixes []string `json:"suffixes,omitempty" yaml:"suffixes,omitempty" hcl:"suffixes,optional"`

	// ExtraFiles are individually named files appended to the candidate set
	ExtraFiles []string `json:"extra_files,omitempty" yaml:"extra_files,omitempty" hcl:"extra_files,optional"`

	// IgnorePatterns are doublestar globs for files to skip
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`

	// Profile selects the built-in rule set ("env" or "full")
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty" hcl:"profile,optional"`

	// Rules are custom rules appended after the profile's built-in set
	Rules []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
}

// 🎯 Default returns the built-in configuration matching the original
// hard-coded behavior: src and scripts walked for .ts/.tsx files,
// next.config.ts appended, full rule profile.
func Default() *Config {
	return &Config{
		Roots:      []string{"src", "scripts"},
		Suffixes:   []string{".ts", ".tsx"},
		ExtraFiles: []string{"next.config.ts"},
		Profile:    rules.ProfileFull,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills defaults for empty fields
func (cfg *Config) Validate() error {
	def := Default()
	if len(cfg.Roots) == 0 {
		cfg.Roots = def.Roots
	}
	if len(cfg.Suffixes) == 0 {
		cfg.Suffixes = def.Suffixes
	}
	if cfg.ExtraFiles == nil {
		cfg.ExtraFiles = def.ExtraFiles
	}
	if cfg.Profile == "" {
		cfg.Profile = def.Profile
	}

	if _, err := rules.ByProfile(cfg.Profile); err != nil {
		return errors.Errorf("validating profile: %w", err)
	}

	if len(cfg.Rules) > 0 {
		custom := rules.Set{Name: "custom", Rules: cfg.Rules}
		if err := custom.Validate(); err != nil {
			return errors.Errorf("validating custom rules: %w", err)
		}
	}

	return nil
}

// 🎯 RuleSet resolves the profile's built-in set plus any custom rules,
// custom rules last
func (cfg *Config) RuleSet() (rules.Set, error) {
	set, err := rules.ByProfile(cfg.Profile)
	if err != nil {
		return rules.Set{}, err
	}
	if len(cfg.Rules) > 0 {
		set = set.Append(cfg.Rules...)
	}
	return set, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("profile=%s roots=%v suffixes=%v extra=%v",
		cfg.Profile, cfg.Roots, cfg.Suffixes, cfg.ExtraFiles)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
