package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModelsCmd(t *testing.T) {
	cmd := NewModelsCmd()

	assert.Equal(t, "models", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestRunModels(t *testing.T) {
	// No config on disk; the listing falls back to the default
	// enhancement model and should still succeed.
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, runModels(NewModelsCmd(), nil))
}
