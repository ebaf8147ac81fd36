package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/text"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagNoSave bool

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play over plain stdin/stdout",
	Long: `Play without the full-screen interface: the board is printed after
every move and one command is read per line. Works with pipes.

Commands:
  L/U/R/D, left/up/right/down  - Slide tiles
  ?                            - Print the board with open cells marked **
  help                         - Show the command list
  q, quit                      - Quit

A lost game is recorded under the 2048_endless scores.

Examples:
  t2048 text
  t2048 text --seed 42 --size 3
  printf 'L\nU\nR\nD\n' | t2048 text --seed 1`,
	Args: cobra.NoArgs,
	Run:  runText,
}

func init() {
	textCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the score")
}

func runText(cmd *cobra.Command, _ []string) {
	logger, closeLog := setup(os.Stderr)
	defer closeLog()

	cfg := t2048.LoadConfig()

	driver, err := text.New(cmd.InOrStdin(), cmd.OutOrStdout(), text.Options{
		Size:            cfg.Board.Size,
		Seed:            uint64(flagSeed),
		FourProbability: cfg.Spawn.FourProbability,
		InitialTiles:    cfg.Spawn.InitialTiles,
		EmptyCell:       cfg.Display.EmptyCell,
		Logger:          logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := driver.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !result.Lost || flagNoSave {
		return
	}

	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	runID, err := store.SaveScore(storage.Run{
		Mode:      t2048.IDEndless,
		Score:     result.Score,
		MaxTile:   result.MaxTile,
		Moves:     result.Moves,
		BoardSize: cfg.Board.Size,
	})
	if err != nil {
		logger.Error("could not save score", "error", err)
		return
	}
	logger.Debug("score saved", "run_id", runID, "score", result.Score)
}
