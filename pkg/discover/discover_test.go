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

package discover_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tsfix/pkg/discover"
)

// 🧪 writeTree creates files (with parent dirs) under root
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("content"), 0o644))
	}
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir,
		"src/app.ts",
		"src/components/button.tsx",
		"src/styles/main.css",
		"src/notes.md",
		"scripts/migrate.ts",
	)

	got, err := discover.Files(testContext(t), discover.Options{
		Roots:      []string{filepath.Join(tmpDir, "src"), filepath.Join(tmpDir, "scripts")},
		Suffixes:   []string{".ts", ".tsx"},
		ExtraFiles: []string{filepath.Join(tmpDir, "next.config.ts")},
	})
	require.NoError(t, err)

	want := []string{
		filepath.Join(tmpDir, "src/app.ts"),
		filepath.Join(tmpDir, "src/components/button.tsx"),
		filepath.Join(tmpDir, "scripts/migrate.ts"),
		filepath.Join(tmpDir, "next.config.ts"),
	}
	assert.ElementsMatch(t, want, got, "only suffix matches plus the extra file")

	// Extra files come last and are not existence-checked
	assert.Equal(t, filepath.Join(tmpDir, "next.config.ts"), got[len(got)-1])
}

func TestFilesMissingRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "src/app.ts")

	got, err := discover.Files(testContext(t), discover.Options{
		Roots:    []string{filepath.Join(tmpDir, "src"), filepath.Join(tmpDir, "does-not-exist")},
		Suffixes: []string{".ts"},
	})
	require.NoError(t, err, "a missing root is not an error")
	assert.Equal(t, []string{filepath.Join(tmpDir, "src/app.ts")}, got)
}

func TestFilesIgnorePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir,
		"src/app.ts",
		"src/app.test.ts",
		"src/generated/types.ts",
	)

	got, err := discover.Files(testContext(t), discover.Options{
		Roots:    []string{filepath.Join(tmpDir, "src")},
		Suffixes: []string{".ts"},
		IgnorePatterns: []string{
			"**/*.test.ts",
			"**/generated/**",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "src/app.ts")}, got, "ignored files are excluded")
}

func TestFilesEmptyOptions(t *testing.T) {
	got, err := discover.Files(testContext(t), discover.Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilesDeterministicOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "src/a.ts", "src/b.ts", "src/sub/c.ts")

	opts := discover.Options{
		Roots:    []string{filepath.Join(tmpDir, "src")},
		Suffixes: []string{".ts"},
	}

	first, err := discover.Files(testContext(t), opts)
	require.NoError(t, err)
	second, err := discover.Files(testContext(t), opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "discovery order must be stable")
}
