package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode (default: campaign).

Examples:
  t2048 scores
  t2048 scores 2048_endless --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := t2048.IDCampaign
	if len(args) == 1 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := setup(os.Stderr)
	defer closeLog()

	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(cmd.OutOrStdout(), store, mode, game.Title(), flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the score table for one mode.
func printScores(out io.Writer, store *storage.Store, mode, title string, limit int) error {
	scores, err := store.TopScores(mode, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-6s  %-5s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Board", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-6s  %-5s  %s\n", "----", "-----", "--------", "-----", "-----", "----")
	for i, e := range scores {
		board := fmt.Sprintf("%dx%d", e.BoardSize, e.BoardSize)
		fmt.Fprintf(out, "  %-4d  %-8d  %-8d  %-6d  %-5s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, board, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode)
	if err == nil && stats != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Best tile: %d  Games: %d\n", stats.HighScore, stats.BestTile, stats.GamesCount)
	}
	return nil
}
