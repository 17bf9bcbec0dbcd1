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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tsfix/pkg/rules"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "valid_yaml",
			filename: "tsfix.yaml",
			config: `
roots:
  - src
  - scripts
suffixes:
  - .ts
  - .tsx
extra_files:
  - next.config.ts
ignore_patterns:
  - "**/*.d.ts"
profile: full
rules:
  - name: custom-token
    pattern: '\.token\b(?!\()'
    replacement: "['token']"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"src", "scripts"}, cfg.Roots, "roots should match")
				assert.Equal(t, []string{".ts", ".tsx"}, cfg.Suffixes, "suffixes should match")
				assert.Equal(t, []string{"next.config.ts"}, cfg.ExtraFiles, "extra files should match")
				assert.Equal(t, []string{"**/*.d.ts"}, cfg.IgnorePatterns, "ignore patterns should match")
				assert.Equal(t, rules.ProfileFull, cfg.Profile, "profile should match")
				require.Len(t, cfg.Rules, 1, "should have 1 custom rule")
				assert.Equal(t, "custom-token", cfg.Rules[0].Name)
			},
		},
		{
			name:     "yaml_defaults_filled",
			filename: "tsfix.yaml",
			config:   `profile: env`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, rules.ProfileEnv, cfg.Profile)
				assert.Equal(t, []string{"src", "scripts"}, cfg.Roots, "empty roots fall back to defaults")
				assert.Equal(t, []string{".ts", ".tsx"}, cfg.Suffixes)
				assert.Equal(t, []string{"next.config.ts"}, cfg.ExtraFiles)
			},
		},
		{
			name:     "valid_hcl",
			filename: "tsfix.hcl",
			config: `
roots       = ["src"]
suffixes    = [".ts"]
extra_files = []
profile     = "env"

rule "custom-token" {
  pattern     = "\\.token\\b(?!\\()"
  replacement = "['token']"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"src"}, cfg.Roots)
				assert.Equal(t, []string{".ts"}, cfg.Suffixes)
				assert.Empty(t, cfg.ExtraFiles, "explicit empty extra_files stays empty")
				assert.Equal(t, rules.ProfileEnv, cfg.Profile)
				require.Len(t, cfg.Rules, 1)
				assert.Equal(t, "custom-token", cfg.Rules[0].Name)
			},
		},
		{
			name:        "unknown_profile",
			filename:    "tsfix.yaml",
			config:      `profile: everything`,
			wantErr:     true,
			errContains: "unknown rule profile",
		},
		{
			name:     "bad_custom_rule",
			filename: "tsfix.yaml",
			config: `
rules:
  - name: broken
    pattern: "("
    replacement: "x"
`,
			wantErr:     true,
			errContains: "compiling pattern",
		},
		{
			name:        "unknown_yaml_field",
			filename:    "tsfix.yaml",
			config:      `destination: /tmp/somewhere`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unsupported_extension",
			filename:    "tsfix.toml",
			config:      `profile = "env"`,
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			ctx := logger.WithContext(context.Background())

			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0o644))

			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"src", "scripts"}, cfg.Roots)
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.Suffixes)
	assert.Equal(t, []string{"next.config.ts"}, cfg.ExtraFiles)
	assert.Equal(t, rules.ProfileFull, cfg.Profile)
}

func TestRuleSet(t *testing.T) {
	cfg := Default()
	cfg.Rules = []rules.Rule{
		{Name: "custom", Pattern: `\.foo\b(?!\()`, Replacement: `['foo']`},
	}
	require.NoError(t, cfg.Validate())

	set, err := cfg.RuleSet()
	require.NoError(t, err)

	builtin := rules.Full()
	require.Len(t, set.Rules, len(builtin.Rules)+1, "custom rules append after the profile set")
	assert.Equal(t, "custom", set.Rules[len(set.Rules)-1].Name, "custom rule applies last")
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("a.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("a.hcl"))
	assert.Nil(t, GetParser("a.json"))
}
