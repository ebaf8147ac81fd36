// Package text plays 2048 over plain line-oriented input and output.
// It drives the board engine directly: one command per line, the board
// printed after every turn.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cmdQuit      = "q"
	cmdOpenCells = "?"
	cmdHelp      = "help"
)

const usage = "Moves: L/U/R/D (or left/up/right/down). ? shows open cells, help repeats this, q quits."

// Options configures a text session.
type Options struct {
	Size            int
	Seed            uint64 // 0 picks a time-based seed
	FourProbability float64
	InitialTiles    int
	EmptyCell       string // Glyph for empty cells, "-" when unset
	Logger          *log.Logger
}

// Result summarizes a finished text session.
type Result struct {
	Score   int
	MaxTile int
	Moves   int
	Lost    bool // Board filled up
	Quit    bool // Player quit or input ended
}

// Driver runs one text session.
type Driver struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	eng    *engine.Engine
	empty  string
	moves  int
}

// New creates a driver and places the initial tiles.
func New(r io.Reader, w io.Writer, opts Options) (*Driver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engOpts := []engine.Option{engine.WithSpawnFourProbability(opts.FourProbability)}
	if opts.Seed != 0 {
		engOpts = append(engOpts, engine.WithSeed(opts.Seed))
	}
	eng, err := engine.New(opts.Size, engOpts...)
	if err != nil {
		return nil, fmt.Errorf("text: cannot create board: %w", err)
	}

	d := &Driver{
		in:     bufio.NewScanner(r),
		out:    w,
		logger: logger,
		eng:    eng,
		empty:  opts.EmptyCell,
	}
	for range opts.InitialTiles {
		if err := d.spawn(); err != nil {
			break
		}
	}
	// Build the index even when no tile was placed.
	d.eng.RefreshOpenCells()
	return d, nil
}

// Engine returns the board engine being played.
func (d *Driver) Engine() *engine.Engine {
	return d.eng
}

// spawn refreshes the open-cell index, places a tile and refreshes again.
func (d *Driver) spawn() error {
	d.eng.RefreshOpenCells()
	cell, value, err := d.eng.SpawnRandomTile()
	if err != nil {
		d.logger.Debug("spawn rejected", "err", err)
		return err
	}
	d.logger.Debug("spawned tile", "row", cell.Row, "col", cell.Col, "value", value)
	d.eng.RefreshOpenCells()
	return nil
}

// Run reads commands until the board fills up, the player quits, or input ends.
func (d *Driver) Run() (Result, error) {
	fmt.Fprintln(d.out, "=== 2048 ===")
	fmt.Fprintln(d.out, usage)
	fmt.Fprintln(d.out)

	for {
		d.printBoard()

		if d.eng.IsLost() {
			fmt.Fprintln(d.out, "Game Over!")
			d.logger.Info("game over", "score", d.eng.Score(), "max_tile", d.eng.MaxTile(), "moves", d.moves)
			return d.result(true, false), nil
		}

		fmt.Fprint(d.out, "Move: ")
		if !d.in.Scan() {
			if err := d.in.Err(); err != nil {
				return d.result(false, true), fmt.Errorf("text: cannot read input: %w", err)
			}
			fmt.Fprintln(d.out)
			return d.result(false, true), nil
		}

		if quit := d.handle(strings.TrimSpace(d.in.Text())); quit {
			fmt.Fprintln(d.out, "Quit.")
			return d.result(false, true), nil
		}
		fmt.Fprintln(d.out)
	}
}

// handle runs one command line. It reports whether the player quit.
func (d *Driver) handle(line string) bool {
	switch strings.ToLower(line) {
	case "":
		return false
	case cmdQuit, "quit":
		return true
	case cmdOpenCells:
		fmt.Fprint(d.out, d.eng.FormatOpenCells())
		return false
	case cmdHelp:
		fmt.Fprintln(d.out, usage)
		return false
	}

	dir := engine.ParseDirection(line)
	if dir == engine.DirNone {
		fmt.Fprintf(d.out, "Unrecognized move %q. %s\n", line, usage)
		return false
	}

	if !d.eng.ApplyMove(dir) {
		fmt.Fprintln(d.out, "Board did not change.")
		return false
	}
	d.moves++
	//nolint:errcheck // A changed board always has an open cell
	d.spawn()
	return false
}

func (d *Driver) printBoard() {
	fmt.Fprint(d.out, d.eng.FormatEmpty(d.empty))
	fmt.Fprintf(d.out, "Score: %d  Moves: %d\n", d.eng.Score(), d.moves)
}

func (d *Driver) result(lost, quit bool) Result {
	return Result{
		Score:   d.eng.Score(),
		MaxTile: d.eng.MaxTile(),
		Moves:   d.moves,
		Lost:    lost,
		Quit:    quit,
	}
}
