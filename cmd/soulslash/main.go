// soulslash runs the Soul Slash arena game in the terminal.
//
// Usage:
//
//	soulslash list              - List game modes
//	soulslash play [mode]       - Play a mode (default: soulslash)
//	soulslash menu              - Pick a mode interactively
//	soulslash serve             - Start SSH server for remote play
//	soulslash scores [mode]     - Show high scores and run stats
//	soulslash config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.soulslash/scores.db)
//	--log-file <path>   - Write session logs to a file
//	--debug             - Log every simulation event
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/soul-slash/internal/games/soulslash"
	"github.com/vovakirdan/soul-slash/internal/platform/runlog"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "soulslash",
	Short: "Soul Slash - slash demons in your terminal",
	Long: `Soul Slash is an arena survival game. Demons pour in from the edges;
slash them before they take your soul.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and run stats
  config   - Print the default configuration

Examples:
  soulslash play
  soulslash play soulslash_endless --difficulty hard
  soulslash menu
  soulslash serve --ssh :2222
  soulslash scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.soulslash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append session logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every simulation event")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger opens the --log-file logger, falling back to discarding.
func openLogger(prefix string) (*log.Logger, io.Closer) {
	logger, closer, err := runlog.OpenLogger(flagLogFile, flagDebug, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer, _ = runlog.OpenLogger("", flagDebug, prefix)
	}
	return logger, closer
}
