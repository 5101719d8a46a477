// Package integration provides end-to-end testing utilities for burnish.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HartBrook/burnish/internal/config"
	"github.com/HartBrook/burnish/internal/enhance"
)

// TestEnv provides an isolated test environment with its own home and
// working directories.
type TestEnv struct {
	t       *testing.T
	RootDir string // t.TempDir() root
	HomeDir string // Simulated $HOME
	WorkDir string // Directory for input, output, and .env files
}

// NewTestEnv creates an isolated test environment. HOME points at a
// temporary directory and any ambient API key is cleared so tests never
// pick up real credentials.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	rootDir := t.TempDir()
	homeDir := filepath.Join(rootDir, "home")
	workDir := filepath.Join(rootDir, "work")

	for _, dir := range []string{
		filepath.Join(homeDir, ".config", "burnish"),
		workDir,
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", homeDir)
	t.Setenv(config.APIKeyEnvVar, "")

	return &TestEnv{
		t:       t,
		RootDir: rootDir,
		HomeDir: homeDir,
		WorkDir: workDir,
	}
}

// Chdir moves the test into the work directory so files the command
// resolves relative to the current directory (.env, the run log) land
// in the temporary tree.
func (e *TestEnv) Chdir() {
	orig, err := os.Getwd()
	if err != nil {
		e.t.Fatal(err)
	}
	if err := os.Chdir(e.WorkDir); err != nil {
		e.t.Fatal(err)
	}
	e.t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			e.t.Error(err)
		}
	})
}

// InputPath returns the path for a named file in the work directory.
func (e *TestEnv) InputPath(name string) string {
	return filepath.Join(e.WorkDir, name)
}

// OutputPath returns the path for a named output file in the work directory.
func (e *TestEnv) OutputPath(name string) string {
	return filepath.Join(e.WorkDir, name)
}

// WriteInput writes a prompt file into the work directory.
func (e *TestEnv) WriteInput(name, content string) error {
	return os.WriteFile(e.InputPath(name), []byte(content), 0644)
}

// WriteDotEnv writes a .env file into the work directory.
func (e *TestEnv) WriteDotEnv(content string) error {
	return os.WriteFile(filepath.Join(e.WorkDir, ".env"), []byte(content), 0644)
}

// WriteConfig writes config.yaml into the simulated home.
func (e *TestEnv) WriteConfig(cfg *config.Config) error {
	return config.Save(cfg)
}

// ReadOutput reads a named output file from the work directory.
func (e *TestEnv) ReadOutput(name string) (string, error) {
	content, err := os.ReadFile(e.OutputPath(name))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadRunLog reads the append-only run log from the work directory.
func (e *TestEnv) ReadRunLog() (string, error) {
	content, err := os.ReadFile(filepath.Join(e.WorkDir, config.DefaultLogFile))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// NewScriptedEnhancer returns an enhancer whose API calls are served by
// the scripted service. The heuristic estimator keeps token counts
// deterministic regardless of whether tokenizer data is available.
func NewScriptedEnhancer(t *testing.T, svc *Service) *enhance.Enhancer {
	t.Helper()

	enhancer := enhance.NewEnhancer(enhance.NewHeuristicEstimator())
	enhancer.SetClient(svc.Client())
	return enhancer
}
