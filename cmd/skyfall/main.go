// skyfall is a terminal arcade game: catch the falling good items, dodge
// the bad ones, and get your initials onto the high score table.
//
// Usage:
//
//	skyfall play              - Play in this terminal
//	skyfall scores            - Show high scores and run history
//	skyfall serve             - Start SSH server for remote play
//	skyfall characters        - List selectable characters
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.skyfall/skyfall.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - catch what falls, dodge what hurts",
	Long: `Skyfall is a terminal arcade game. Move your character along the
bottom of the screen to catch good items and avoid bad ones. Items fall
faster and more often the longer you survive.

Available commands:
  play        - Play in this terminal
  scores      - View high scores and run history
  serve       - Start SSH server for remote play
  characters  - List selectable characters

Examples:
  skyfall play
  skyfall play --difficulty hard --mute
  skyfall scores --recent
  skyfall serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfall/skyfall.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(charactersCmd)
}
