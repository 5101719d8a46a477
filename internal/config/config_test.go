package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid full config",
			config: Config{
				Version: 1,
				Model:   "sonnet-4.5",
				LogFile: "custom.log",
			},
			wantErr: false,
		},
		{
			name: "unsupported version",
			config: Config{
				Version: 2,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.applyDefaults()
			err := tt.config.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, DefaultVersion)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
	if cfg.Model != "" {
		t.Errorf("Model = %q, want empty (resolved by the caller)", cfg.Model)
	}
}

func TestLoadAndSave(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	original := &Config{
		Version: 1,
		Model:   "haiku-3.5",
		LogFile: "runs.log",
	}

	// Save
	if err := SaveTo(original, configPath); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Config file not created: %v", err)
	}

	// Load
	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if loaded.Model != original.Model {
		t.Errorf("Model = %q, want %q", loaded.Model, original.Model)
	}
	if loaded.LogFile != original.LogFile {
		t.Errorf("LogFile = %q, want %q", loaded.LogFile, original.LogFile)
	}
}

func TestLoadFrom_NotFound(t *testing.T) {
	_, err := LoadFrom("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFrom() expected error for nonexistent file")
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: [not closed"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("LoadFrom() expected error for invalid YAML")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", origHome)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, DefaultVersion)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
}

func TestExists(t *testing.T) {
	origHome := os.Getenv("HOME")
	home := t.TempDir()
	os.Setenv("HOME", home)
	defer os.Setenv("HOME", origHome)

	if Exists() {
		t.Error("Exists() = true before any config was written")
	}

	if err := Save(&Config{Version: 1}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if !Exists() {
		t.Error("Exists() = false after Save()")
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "burnish.log")

	f, err := SetupLogging(logPath)
	if err != nil {
		t.Fatalf("SetupLogging() error: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file not created: %v", err)
	}

	// A second setup must append, not truncate
	if _, err := f.WriteString("first run\n"); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	f.Close()

	f2, err := SetupLogging(logPath)
	if err != nil {
		t.Fatalf("SetupLogging() second call error: %v", err)
	}
	defer f2.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "first run\n" {
		t.Errorf("log file truncated, content = %q", string(data))
	}
}
