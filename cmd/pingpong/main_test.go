package main

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"pingpong/internal/setup"
)

// TestInvalidTargetFlag verifies a bad --target fails before any window opens
func TestInvalidTargetFlag(t *testing.T) {
	tests := []string{"abc", "", "-1", "3x"}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs([]string{
				"--config", filepath.Join(t.TempDir(), "none.toml"),
				"--target", target,
			})
			if err := cmd.Execute(); !errors.Is(err, setup.ErrInvalidTarget) {
				t.Errorf("Expected ErrInvalidTarget, got %v", err)
			}
		})
	}
}

// TestSetLogLevels verifies level names are checked
func TestSetLogLevels(t *testing.T) {
	if err := setLogLevels("debug"); err != nil {
		t.Errorf("Expected debug to be accepted, got %v", err)
	}
	if err := setLogLevels("loud"); err == nil {
		t.Error("Expected an unknown level to fail")
	}
	setLogLevels("info")
}

// TestRejectsArgs verifies positional arguments are refused
func TestRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for positional arguments")
	}
}
