// shmup is a top-down arcade shooter that runs in the terminal.
//
// Usage:
//
//	shmup                    - Play the default mode
//	shmup play [mode]        - Play a mode (shmup, shmup_classic)
//	shmup menu               - Pick a mode interactively
//	shmup list               - List available modes
//	shmup simulate           - Run a headless autopilot session
//	shmup config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: from config, 30)
//	--seed <value>        - RNG seed for reproducible sessions
//	--config <path>       - Custom configuration YAML
//	--difficulty <name>   - easy, normal, hard
//	--mute                - Disable audio
//	--volume <0..1>       - Master volume
//	--log-file <path>     - Write gameplay logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-shmup/internal/games/shmup"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shmup",
	Short: "Shmup - a top-down arcade shooter for your terminal",
	Long: `Shmup is a top-down arcade shooter played in the terminal.

Steer the ship, shoot the falling rocks, and keep your shield up.
Every hit drains the shield; when it runs out you lose a life.

Available commands:
  play      - Play a mode directly (default)
  menu      - Interactive mode picker with session scores
  list      - Show all available modes
  simulate  - Run a headless session with an autopilot
  config    - Print the default configuration YAML

Examples:
  shmup
  shmup play shmup_classic
  shmup --difficulty hard --seed 42
  shmup simulate --ticks 3000`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound and music")
	pf.Float64Var(&flagVolume, "volume", 1.0, "Master volume from 0.0 to 1.0")
	pf.StringVar(&flagLogFile, "log-file", "", "Append gameplay logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
