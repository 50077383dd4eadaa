// soulslash-window runs Soul Slash in a desktop window.
//
// Usage:
//
//	soulslash-window [--endless] [--difficulty hard] [--seed 42]
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/soul-slash/internal/config"
	"github.com/vovakirdan/soul-slash/internal/games/soulslash"
	"github.com/vovakirdan/soul-slash/internal/platform/runlog"
	"github.com/vovakirdan/soul-slash/internal/platform/window"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagNoDB       bool
	flagLogFile    string
	flagDebug      bool
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "soulslash-window",
	Short: "Soul Slash in a desktop window",
	Long: `Play Soul Slash in a 960x540 window.

Controls:
  Arrows/WASD - Move
  Space       - Slash
  P/Esc       - Pause
  R           - Try again (after the session ends)
  Esc         - Rest (after the session ends)
  Ctrl+Q      - Quit

Examples:
  soulslash-window
  soulslash-window --endless --difficulty hard
  soulslash-window --seed 42 --no-db`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (updates per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.soulslash/scores.db", "Path to scores database")
	rootCmd.Flags().BoolVar(&flagNoDB, "no-db", false, "Do not record scores or runs")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append session logs to this file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every simulation event")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play without a win score")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	cmd.SilenceUsage = true

	soulslash.SetConfigPath(flagConfig)
	soulslash.SetDifficultyPreset(flagDifficulty)

	game := soulslash.New()
	if flagEndless {
		game = soulslash.NewEndless()
	}

	logger, logCloser, err := runlog.OpenLogger(flagLogFile, flagDebug, "soulslash-window")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	var store *storage.Store
	if !flagNoDB {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	player := ""
	if u, uerr := user.Current(); uerr == nil {
		player = u.Username
	}

	return window.Run(game, window.Options{
		Store:      store,
		Logger:     logger,
		Player:     player,
		Difficulty: flagDifficulty,
		Seed:       flagSeed,
		TickRate:   flagFPS,
	})
}
