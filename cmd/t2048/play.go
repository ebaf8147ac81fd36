package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Defaults to the campaign.

Modes:
  2048          - Campaign: reach each level's target tile
  2048_endless  - Endless: play until the board is full

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  O/?               - Show open cells
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048 --level 3
  t2048 play 2048_endless --size 6
  t2048 play --difficulty hard --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based, 0 = first)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := t2048.IDCampaign
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := setup(io.Discard)
	defer closeLog()

	if flagLevel < 0 || flagLevel > t2048.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d\n", t2048.LevelCount())
		os.Exit(1)
	}
	t2048.SetStartLevel(flagLevel)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, saver(store), runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// saver converts a possibly nil store into a ScoreSaver.
// A nil *storage.Store must not become a non-nil interface.
func saver(store *storage.Store) tui.ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}

// reader converts a possibly nil store into a ScoreReader.
func reader(store *storage.Store) tui.ScoreReader {
	if store == nil {
		return nil
	}
	return store
}
