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

// Package operation drives a rewrite run: discover candidates, transform
// each file in discovery order, write back changes, aggregate a summary.
package operation

import (
	"github.com/walteh/tsfix/pkg/config"
	"github.com/walteh/tsfix/pkg/rewrite"
	"github.com/walteh/tsfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the fix operation
type Options struct {
	// Config is the run configuration
	Config *config.Config

	// Rewriter is the compiled rule engine
	Rewriter *rewrite.Rewriter

	// Logger reports per-file outcomes to the user
	Logger *status.UserLogger

	// DryRun renders diffs instead of writing files
	DryRun bool

	// WorkDir is the directory roots and extra files are resolved against.
	// Empty means the current directory.
	WorkDir string
}

// 🎮 FixOperation implements the rewrite run
type FixOperation struct {
	cfg      *config.Config
	rewriter *rewrite.Rewriter
	logger   *status.UserLogger
	dryRun   bool
	workDir  string
}

// 🏭 New creates a new fix operation with the given options
func New(opts Options) (*FixOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &FixOperation{
		cfg:      opts.Config,
		rewriter: opts.Rewriter,
		logger:   opts.Logger,
		dryRun:   opts.DryRun,
		workDir:  opts.WorkDir,
	}, nil
}
