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

package status

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about file rewrites. Outcome
// lines go to stdout, error lines to stderr, and everything is mirrored to
// zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileResult logs one file outcome with appropriate prefix and stream
func (u *UserLogger) LogFileResult(r FileResult) {
	switch r.Outcome {
	case Fixed:
		printer := pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
		printer.Printf("Fixed %s (%d replacements)\n", r.Path, r.Replacements)
		u.log.Info().Str("file", r.Path).Int("replacements", r.Replacements).Msg("fixed")
	case ReadFailed, WriteFailed, TransformFailed:
		printer := pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(os.Stderr)
		printer.Printf("Error processing %s: %v\n", r.Path, r.Err)
		u.log.Error().Err(r.Err).Str("file", r.Path).Str("outcome", r.Outcome.String()).Msg("file failed")
	default:
		// Unchanged files are debug-only, matching the original's silence
		u.log.Debug().Str("file", r.Path).Msg("unchanged")
	}

	if r.Diff != "" {
		fmt.Fprint(os.Stdout, r.Diff)
	}
}

// 📊 LogSummary logs the final run summary
func (u *UserLogger) LogSummary(s *Summary) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Printf("Fixed %d files\n", s.Fixed)
	if s.Failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(os.Stderr).
			Printf("%d files failed\n", s.Failed)
	}
	u.log.Info().
		Int("fixed", s.Fixed).
		Int("unchanged", s.Unchanged).
		Int("failed", s.Failed).
		Msg("run complete")
}

// 🔍 LogValidation logs setup validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	printer := pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(os.Stderr)
	printer.Println(description)
	if err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
	}
	u.log.Error().Err(err).Msg(description)
}
