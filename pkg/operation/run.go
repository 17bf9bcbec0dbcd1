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

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tsfix/pkg/discover"
	"github.com/walteh/tsfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run executes the rewrite over every candidate file, strictly in
// discovery order. Per-file failures are recorded in the summary and never
// abort the run; the error return covers discovery and setup only.
func (op *FixOperation) Run(ctx context.Context) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)

	files, err := discover.Files(ctx, discover.Options{
		Roots:          op.resolve(op.cfg.Roots),
		Suffixes:       op.cfg.Suffixes,
		ExtraFiles:     op.resolve(op.cfg.ExtraFiles),
		IgnorePatterns: op.cfg.IgnorePatterns,
	})
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}

	summary := &status.Summary{}
	for _, path := range files {
		res := op.processFile(ctx, path)
		summary.Add(res)
		op.logger.LogFileResult(res)
	}

	logger.Debug().Int("candidates", len(files)).Int("fixed", summary.Fixed).Msg("run finished")
	return summary, nil
}

// 📝 processFile runs the read-transform-write cycle for one candidate.
// The file is read fully into memory, transformed, and written back in place
// only when the content changed. No backup is created.
func (op *FixOperation) processFile(ctx context.Context, path string) status.FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return status.FileResult{
			Path:    path,
			Outcome: status.ReadFailed,
			Err:     errors.Errorf("reading file: %w", err),
		}
	}

	res, err := op.rewriter.Apply(ctx, string(data))
	if err != nil {
		// Rule application over the built-in sets cannot fail; this guards
		// user-supplied config rules with pathological patterns.
		return status.FileResult{
			Path:    path,
			Outcome: status.TransformFailed,
			Err:     errors.Errorf("applying rules: %w", err),
		}
	}

	if !res.Changed {
		return status.FileResult{Path: path, Outcome: status.Unchanged}
	}

	if op.dryRun {
		diff, derr := status.UnifiedDiff(path, string(data), res.Content)
		if derr != nil {
			diff = ""
		}
		return status.FileResult{
			Path:         path,
			Outcome:      status.Fixed,
			Replacements: res.Total,
			Diff:         diff,
		}
	}

	if err := os.WriteFile(path, []byte(res.Content), fileMode(path)); err != nil {
		return status.FileResult{
			Path:    path,
			Outcome: status.WriteFailed,
			Err:     errors.Errorf("writing file: %w", err),
		}
	}

	return status.FileResult{
		Path:         path,
		Outcome:      status.Fixed,
		Replacements: res.Total,
	}
}

// 🔍 resolve prefixes relative paths with the configured working directory
func (op *FixOperation) resolve(paths []string) []string {
	if op.workDir == "" {
		return paths
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(op.workDir, p)
	}
	return out
}

// 🔍 fileMode returns the file's current permission bits, falling back to
// 0644 if the file vanished between read and write
func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}
