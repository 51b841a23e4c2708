package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigTheme bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.arcade/configs/snake.yaml and edit the keys you want to change.

Examples:
  snake config > ~/.arcade/configs/snake.yaml
  snake config --theme > ~/.arcade/configs/theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigTheme, "theme", false, "Print the default theme instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	name := "snake"
	if flagConfigTheme {
		name = "theme"
	}
	if _, err := os.Stdout.Write(config.GetDefaultYAML(name)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
