package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/soul-slash/internal/config"
	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/games/soulslash"
	"github.com/vovakirdan/soul-slash/internal/platform/tui"
	"github.com/vovakirdan/soul-slash/internal/registry"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Soul Slash",
	Long: `Start playing. The mode defaults to the campaign (soulslash).

Controls:
  Arrows/WASD - Move
  Space       - Slash
  P/Esc       - Pause
  R           - Try again (after the session ends)
  Esc         - Rest (after the session ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More soul power, slower spawns
  normal - Default settings
  hard   - Less soul power, faster demons
  fixed  - Spawn rate never ramps up

Examples:
  soulslash play
  soulslash play soulslash_endless
  soulslash play --difficulty hard
  soulslash play --config ./my-soulslash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config for the local terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Caps:     tui.DetectCapabilities(),
	}
}

// localPlayer tags local scores with the OS user name.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// openStore opens the scores database; the game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "soulslash"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'soulslash list' to see available modes.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	soulslash.SetConfigPath(flagConfig)
	soulslash.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := openLogger("soulslash")
	defer logCloser.Close()

	store := openStore()

	runErr := tui.Run(game, store, terminalConfig(), tui.Session{
		Player:     localPlayer(),
		Difficulty: flagDifficulty,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
