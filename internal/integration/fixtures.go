package integration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Fixture represents a scripted enhancement scenario loaded from YAML.
type Fixture struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Prompt      string        `yaml:"prompt"`
	TokenLimit  int           `yaml:"token_limit"`
	TargetModel string        `yaml:"target_model"`
	Replies     []string      `yaml:"replies"`
	Expect      FixtureExpect `yaml:"expect"`
}

// FixtureExpect defines what to verify after the run.
type FixtureExpect struct {
	ErrorCode        string    `yaml:"error_code"`
	Compressed       bool      `yaml:"compressed"`
	APICalls         int       `yaml:"api_calls"`
	Temperatures     []float64 `yaml:"temperatures"`
	EnhancedContains []string  `yaml:"enhanced_contains"`
}

// LoadFixture loads a fixture from a YAML file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, err
	}

	if err := fixture.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", path, err)
	}

	return &fixture, nil
}

// Validate checks that the fixture has all required fields.
func (f *Fixture) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if f.Expect.ErrorCode == "" && len(f.Expect.EnhancedContains) == 0 {
		return fmt.Errorf("expect must set error_code or enhanced_contains")
	}
	return nil
}

// LoadAllFixtures loads all fixtures from a directory.
func LoadAllFixtures(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var fixtures []*Fixture
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".yaml" && filepath.Ext(name) != ".yml" {
			continue
		}

		fixture, err := LoadFixture(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}

	return fixtures, nil
}
