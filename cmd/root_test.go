package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "brushgen" {
		t.Errorf("Expected Use to be 'brushgen', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	if rootCmd.RunE == nil {
		t.Error("Expected the root command to run generation directly")
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("9.9.9-test")

	var buf bytes.Buffer
	versionCmd := newVersionCmd()
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(buf.String(), "9.9.9-test") {
		t.Errorf("Expected version output to contain 9.9.9-test, got %q", buf.String())
	}
}

func TestGenerate_OutsideRepository(t *testing.T) {
	tempDir := t.TempDir()

	originalOsGetwd := osGetwd
	defer func() { osGetwd = originalOsGetwd }()
	osGetwd = func() (string, error) { return tempDir, nil }

	generateCmd := newGenerateCmd()
	generateCmd.SetOut(&bytes.Buffer{})
	generateCmd.SetErr(&bytes.Buffer{})

	err := generateCmd.RunE(generateCmd, nil)
	if err == nil {
		t.Fatal("Expected an error when no repository root exists")
	}
	if !strings.Contains(err.Error(), "no repository root") {
		t.Errorf("Expected a repository root error, got %v", err)
	}
}

func TestGenerate_MissingDefinitions(t *testing.T) {
	// A repository root with no definitions file fails before any output
	// is written.
	tempDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tempDir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	originalOsGetwd := osGetwd
	defer func() { osGetwd = originalOsGetwd }()
	osGetwd = func() (string, error) { return tempDir, nil }

	generateCmd := newGenerateCmd()
	generateCmd.SetOut(&bytes.Buffer{})
	generateCmd.SetErr(&bytes.Buffer{})

	err := generateCmd.RunE(generateCmd, nil)
	if err == nil {
		t.Fatal("Expected an error when the definitions file is missing")
	}
	if !strings.Contains(err.Error(), "brush definitions") {
		t.Errorf("Expected a definitions error, got %v", err)
	}
}
