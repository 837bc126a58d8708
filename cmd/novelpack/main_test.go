package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "version subcommand",
			args:         []string{"novelpack", "version"},
			expectedExit: 0,
		},
		{
			name:         "clean in empty workspace",
			args:         []string{"novelpack", "clean"},
			expectedExit: 0,
		},
		{
			name:         "unknown subcommand",
			args:         []string{"novelpack", "bogus"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	// An unparseable override file fails the run before any phase starts.
	err := os.WriteFile("novelpack.yaml", []byte("appName: [unterminated"), 0o600)
	if err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	os.Args = []string{"novelpack", "clean"}
	assert.Equal(t, 1, run())
}
