package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HartBrook/burnish/internal/config"
	"github.com/HartBrook/burnish/internal/enhance"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the burnish config file",
		Long: `Writes a starter config file to ~/.config/burnish/config.yaml.

The config file is optional. It holds preferences like which tier
performs enhancement rewrites and where run logs are appended.`,
		Example: `  burnish init
  burnish init --force   # Overwrite an existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(force bool) error {
	paths := config.NewPaths()

	if config.Exists() && !force {
		fmt.Println("Burnish is already configured.")
		fmt.Printf("Config file: %s\n", paths.ConfigFile)
		fmt.Println()
		fmt.Printf("Use %s to overwrite it.\n", info("burnish init --force"))
		return nil
	}

	cfg := &config.Config{
		Version: config.DefaultVersion,
		Model:   enhance.DefaultEnhancementModel,
		LogFile: config.DefaultLogFile,
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	printSuccess("Config saved to %s", paths.ConfigFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  %s  - check a prompt's token budget\n", info("burnish enhance -t 2000 --dry-run"))
	fmt.Printf("  %s                      - list model tiers\n", info("burnish models"))

	return nil
}
