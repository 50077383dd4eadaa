package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/soul-slash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.soulslash/configs/soulslash.yaml or pass it with --config to customize.

Examples:
  soulslash config > my-soulslash.yaml
  soulslash play --config my-soulslash.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML("soulslash")
	if data == nil {
		fmt.Fprintln(os.Stderr, "Error: no default configuration embedded")
		os.Exit(1)
	}
	fmt.Print(string(data))
}
