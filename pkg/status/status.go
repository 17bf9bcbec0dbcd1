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

// 🎨 Outcome represents the result of processing one file
type Outcome int

const (
	// Unchanged means no rule matched; the file was not written
	Unchanged Outcome = iota
	// Fixed means the content changed and was written back (or would be, in a dry run)
	Fixed
	// ReadFailed means the file could not be read; nothing was written
	ReadFailed
	// WriteFailed means the transform succeeded but the write back failed
	WriteFailed
	// TransformFailed means rule application itself failed; nothing was written.
	// Only reachable with user-supplied config rules.
	TransformFailed
)

// 📝 String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Fixed:
		return "fixed"
	case ReadFailed:
		return "read-failed"
	case WriteFailed:
		return "write-failed"
	case TransformFailed:
		return "transform-failed"
	default:
		return "unknown"
	}
}

// 🎯 FileResult records the outcome of one candidate file
type FileResult struct {
	Path         string  // Candidate path as discovered
	Outcome      Outcome // What happened
	Replacements int     // Number of substitutions made
	Err          error   // Set for ReadFailed / WriteFailed
	Diff         string  // Unified diff, populated only in dry runs
}

// 📊 Summary aggregates per-file results for one run
type Summary struct {
	Fixed     int
	Unchanged int
	Failed    int
	Results   []FileResult
}

// 📝 Add records a file result and updates the counters
func (s *Summary) Add(r FileResult) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case Fixed:
		s.Fixed++
	case Unchanged:
		s.Unchanged++
	case ReadFailed, WriteFailed, TransformFailed:
		s.Failed++
	}
}

// 🔍 Errored reports whether any file failed during the run
func (s *Summary) Errored() bool {
	return s.Failed > 0
}
