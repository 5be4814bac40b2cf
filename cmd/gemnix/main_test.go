package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pathOnlyLockfile = `PATH
  remote: .
  specs:
    local (0.1.0)

PLATFORMS
  ruby

DEPENDENCIES
  local!

BUNDLED WITH
   2.5.6
`

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, dir string)
		args         []string
		expectedExit int
		expectedFile string
	}{
		{
			name: "Converts a path gem",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "Gemfile.lock"), []byte(pathOnlyLockfile), 0o600))
			},
			args:         []string{"--quiet"},
			expectedExit: 0,
			expectedFile: "gemset.nix",
		},
		{
			name:         "Missing lockfile",
			setup:        func(_ *testing.T, _ string) {},
			args:         []string{},
			expectedExit: 1,
		},
		{
			name:         "Version",
			setup:        func(_ *testing.T, _ string) {},
			args:         []string{"version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("HOME", tmpDir)
			t.Setenv("NO_COLOR", "1")
			tt.setup(t, tmpDir)

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			exitCode := run(tt.args)
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.expectedFile != "" {
				assert.FileExists(t, filepath.Join(tmpDir, tt.expectedFile))
			}
		})
	}
}
