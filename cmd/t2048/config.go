package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved game config",
	Long: `Print the game config after the search path, difficulty preset and
--size override are applied. The output is valid input for --config.

Examples:
  t2048 config > ~/.t2048/configs/t2048.yaml
  t2048 config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	_, closeLog := setup(os.Stderr)
	defer closeLog()

	if err := writeConfig(cmd.OutOrStdout(), t2048.LoadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeConfig(w io.Writer, cfg config.T2048Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
