package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/burnish/internal/config"
	"github.com/HartBrook/burnish/internal/enhance"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported model tiers",
		Long: `Displays the model tiers burnish can target, with the upstream model
identifier each tier resolves to.

The target tier shapes the enhancement instructions. The enhancement
tier is the model that performs the rewrite; set it in your config file.`,
		Example: `  burnish models`,
		RunE:    runModels,
	}
}

func runModels(cmd *cobra.Command, args []string) error {
	// Which tier performs rewrites, per config
	enhancementTier := enhance.DefaultEnhancementModel
	if cfg, err := config.Load(); err == nil && cfg.Model != "" {
		enhancementTier = cfg.Model
	}

	fmt.Println("Supported Models")
	fmt.Println()

	for _, m := range enhance.SupportedModels {
		var markers []string
		if m.Tier == enhance.DefaultTargetModel {
			markers = append(markers, "default target")
		}
		if m.Tier == enhancementTier {
			markers = append(markers, "enhancement")
		}

		suffix := ""
		if len(markers) > 0 {
			suffix = " " + dim("("+strings.Join(markers, ", ")+")")
		}

		fmt.Printf("  %-12s %-28s %s%s\n", info(m.Tier), m.ID, m.Description, suffix)
	}

	fmt.Println()
	fmt.Printf("Pick a target with %s\n", info("burnish enhance -m <tier>"))

	return nil
}
