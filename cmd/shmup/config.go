package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration YAML.

Save it as ~/.shmup/configs/shmup.yaml or ./configs/shmup.yaml and edit
the values you want to change; missing keys keep their defaults.

Examples:
  shmup config > ~/.shmup/configs/shmup.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		id := defaultGame
		if len(args) > 0 {
			id = args[0]
		}
		data := config.GetDefaultYAML(id)
		if data == nil {
			fatal("no default configuration for %q", id)
		}
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(data)
	},
}
