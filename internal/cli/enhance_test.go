package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/HartBrook/burnish/internal/enhance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnhanceCmd(t *testing.T) {
	cmd := NewEnhanceCmd()

	assert.Equal(t, "enhance", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
}

func TestNewEnhanceCmd_Flags(t *testing.T) {
	cmd := NewEnhanceCmd()

	// Check all flags exist
	flags := []string{
		"token-limit",
		"input",
		"output",
		"target-model",
		"dry-run",
		"compare",
		"verbose",
		"api-key",
	}

	for _, flag := range flags {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %q should exist", flag)
	}
}

func TestNewEnhanceCmd_FlagDefaults(t *testing.T) {
	cmd := NewEnhanceCmd()

	tokenLimit, _ := cmd.Flags().GetInt("token-limit")
	assert.Equal(t, 0, tokenLimit)

	targetModel, _ := cmd.Flags().GetString("target-model")
	assert.Equal(t, enhance.DefaultTargetModel, targetModel)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	assert.False(t, dryRun)

	compare, _ := cmd.Flags().GetBool("compare")
	assert.False(t, compare)
}

func TestNewEnhanceCmd_ShortFlags(t *testing.T) {
	cmd := NewEnhanceCmd()

	shortFlags := map[string]string{
		"t": "token-limit",
		"i": "input",
		"o": "output",
		"m": "target-model",
		"v": "verbose",
	}

	for short, long := range shortFlags {
		f := cmd.Flags().ShorthandLookup(short)
		require.NotNil(t, f, "short flag %q should exist", short)
		assert.Equal(t, long, f.Name)
	}
}

func TestNewEnhanceCmd_TokenLimitRequired(t *testing.T) {
	cmd := NewEnhanceCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "token-limit" not set`)
}

func TestReadPrompt_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Write a haiku about autumn.  \n"), 0644))

	text, err := readPrompt(path)
	require.NoError(t, err)
	assert.Equal(t, "Write a haiku about autumn.", text)
}

func TestReadPrompt_MissingFile(t *testing.T) {
	_, err := readPrompt(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		name   string
		tokens int
		budget int
		want   budgetLevel
	}{
		{"prompt already over the limit", 120, -20, budgetExceeded},
		{"no room left", 100, 0, budgetTight},
		{"under half the prompt size", 100, 49, budgetTight},
		{"exactly half the prompt size", 100, 50, budgetAmple},
		{"plenty of headroom", 100, 900, budgetAmple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budgetStatus(tt.tokens, tt.budget))
		})
	}
}
