package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/HartBrook/burnish/internal/errors"
)

// APIKeyEnvVar is the environment variable holding the Anthropic API key.
const APIKeyEnvVar = "ANTHROPIC_API_KEY"

// LoadDotEnv reads KEY=VALUE pairs from a dotenv file into the process
// environment. A missing file is fine. Variables already present in the
// environment are never overwritten.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrInvalidConfig, "failed to open env file", "", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)

		if key == "" || os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return errors.Wrap(errors.ErrInvalidConfig, "failed to set env variable", "", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, "failed to read env file", "", err)
	}
	return nil
}

// ResolveAPIKey returns the API key to use, preferring an explicit
// override, then the environment.
func ResolveAPIKey(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, nil
	}
	return "", errors.MissingCredential()
}
