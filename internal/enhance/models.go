package enhance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HartBrook/burnish/internal/errors"
)

// ModelSpec maps a model tier to its upstream identifier.
type ModelSpec struct {
	Tier        string // "opus-4.1", "sonnet-4.5"
	ID          string // "claude-opus-4-20250514"
	Description string
}

// SupportedModels lists the tiers burnish can target, most capable first.
var SupportedModels = []ModelSpec{
	{Tier: "opus-4.1", ID: "claude-opus-4-20250514", Description: "Most capable, for complex tasks"},
	{Tier: "sonnet-4.5", ID: "claude-sonnet-4-5-20250929", Description: "Balanced speed and capability"},
	{Tier: "sonnet-3.5", ID: "claude-3-5-sonnet-20241022", Description: "Previous generation Sonnet"},
	{Tier: "haiku-3.5", ID: "claude-3-5-haiku-20241022", Description: "Fastest, for lightweight tasks"},
}

const (
	// DefaultTargetModel is the tier enhanced prompts are written for.
	DefaultTargetModel = "opus-4.1"

	// DefaultEnhancementModel is the tier that performs the rewriting.
	DefaultEnhancementModel = "sonnet-4.5"
)

// ResolveModel returns the spec for a tier, or an error listing how to
// discover valid tiers.
func ResolveModel(tier string) (ModelSpec, error) {
	for _, m := range SupportedModels {
		if m.Tier == tier {
			return m, nil
		}
	}
	return ModelSpec{}, errors.UnknownModel(tier)
}

// DisplayName renders a tier for humans: "opus-4.1" becomes "Opus 4.1".
func DisplayName(tier string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(tier, "-", " "))
}
