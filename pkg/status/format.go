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
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how file outcomes and the run summary are formatted
type FileFormatter interface {
	// FormatFileResult formats a single file outcome line
	FormatFileResult(r FileResult) string

	// FormatSummary formats the final run summary
	FormatSummary(s *Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileResult formats a file outcome line with a colored status word
func (f *DefaultFileFormatter) FormatFileResult(r FileResult) string {
	switch r.Outcome {
	case Fixed:
		return fmt.Sprintf("%s %s (%d replacements)",
			color.GreenString("Fixed:"), r.Path, r.Replacements)
	case ReadFailed, WriteFailed, TransformFailed:
		return fmt.Sprintf("%s %s: %v",
			color.RedString("Error processing"), r.Path, r.Err)
	default:
		return fmt.Sprintf("%s %s",
			color.YellowString("Unchanged:"), r.Path)
	}
}

// FormatSummary formats the final aggregate line. Matching the original
// behavior, the headline count reflects only files that changed; failures are
// reported on their own line when present.
func (f *DefaultFileFormatter) FormatSummary(s *Summary) string {
	line := fmt.Sprintf("Fixed %d files", s.Fixed)
	if s.Failed > 0 {
		line += fmt.Sprintf(" (%s)", color.RedString("%d failed", s.Failed))
	}
	return line
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	return color.RedString("Error: %v", err)
}
