package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/soul-slash/internal/games/soulslash"
	"github.com/vovakirdan/soul-slash/internal/platform/tui"
	"github.com/vovakirdan/soul-slash/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start Soul Slash in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right for the difficulty,
Enter to play. After a session you return to the menu.

Controls:
  Up/Down/j/k   - Pick mode
  Left/Right    - Pick difficulty
  Enter/Space   - Play
  Tab           - Scoreboard
  Q             - Quit

Examples:
  soulslash menu
  soulslash menu --fps 30
  soulslash menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	logger, logCloser := openLogger("soulslash")
	defer logCloser.Close()

	soulslash.SetConfigPath(flagConfig)
	cfg := terminalConfig()
	player := localPlayer()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if g, ok := game.(*soulslash.Game); ok {
			g.SetDifficulty(menuResult.Difficulty)
		}

		// Fresh seed for each session unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		err = tui.Run(game, store, cfg, tui.Session{
			Player:     player,
			Difficulty: string(menuResult.Difficulty),
			Logger:     logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
