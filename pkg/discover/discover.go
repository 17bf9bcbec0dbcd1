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

// Package discover enumerates the candidate files for a rewrite run.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures file discovery
type Options struct {
	// Roots are directories enumerated recursively
	Roots []string

	// Suffixes filter files found under Roots (e.g. ".ts", ".tsx")
	Suffixes []string

	// ExtraFiles are appended unconditionally, regardless of suffix.
	// Existence is not checked here; a missing extra file fails at read time.
	ExtraFiles []string

	// IgnorePatterns are doublestar globs matched against the walked path
	IgnorePatterns []string
}

// 🔍 Files returns candidate paths: each root walked recursively and filtered
// by suffix, then the extra files appended last. A root that does not exist
// contributes nothing. Discovery itself introduces no duplicates; overlap
// between a root and an extra file is accepted, not deduplicated.
func Files(ctx context.Context, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var candidates []string
	for _, root := range opts.Roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			logger.Debug().Str("root", root).Msg("root does not exist, skipping")
			continue
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !matchesSuffix(path, opts.Suffixes) {
				return nil
			}
			if shouldIgnore(logger, path, opts.IgnorePatterns) {
				return nil
			}
			candidates = append(candidates, path)
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("walking root %s: %w", root, err)
		}
	}

	candidates = append(candidates, opts.ExtraFiles...)

	logger.Debug().
		Int("count", len(candidates)).
		Strs("roots", opts.Roots).
		Msg("discovered candidate files")

	return candidates, nil
}

// 🔍 matchesSuffix checks if path ends in any of the given suffixes
func matchesSuffix(path string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}

// 🔍 shouldIgnore checks if a walked path matches an ignore pattern
func shouldIgnore(logger *zerolog.Logger, path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
