// jumper is a terminal arcade jumper: a fixed-timestep platform game with
// walls, collectible bricks and a paddle.
//
// Usage:
//
//	jumper list                 - List available variants
//	jumper play [variant]       - Play a variant (default: jumper)
//	jumper menu                 - Pick a variant interactively
//	jumper serve                - Start SSH server for remote play
//	jumper scores <variant>     - Show high scores for a variant
//	jumper config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.jumper/scores.db)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Where play sessions log (default: ~/.jumper/jumper.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

const defaultLogFile = "~/.jumper/jumper.log"

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - a platform jumper in your terminal",
	Long: `Jumper is a terminal platform game. Jump between platforms,
collect bricks and watch out for the paddle.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  jumper play
  jumper play jumper_bricks --watch
  jumper menu
  jumper serve --ssh :2222
  jumper scores jumper_bricks`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		jumper.SetConfigPath(flagConfig)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to the session log (empty disables logging)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger returns the session logger. The terminal belongs to the game
// while it runs, so logs go to a file.
func openLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}

	logger, closer, err := tui.NewFileLogger(flagLogFile, "jumper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	return logger, func() { closer.Close() }
}

// openStore opens the scores database, continuing without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
