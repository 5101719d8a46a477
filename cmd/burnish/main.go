// Burnish - Rewrite prompts to get better results from Claude
package main

import (
	"os"

	"github.com/HartBrook/burnish/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
