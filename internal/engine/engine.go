// Package engine implements the 2048 board transformation engine.
// All four move directions are built from a single swipe-left primitive
// by rotating the grid. The package has no external dependencies so game
// logic stays pure and testable.
package engine

import (
	"math/rand/v2"
	"time"
)

// DefaultSize is the board dimension used by the classic game.
const DefaultSize = 4

// DefaultSpawnFourProbability is the chance that a spawned tile is a 4.
const DefaultSpawnFourProbability = 0.1

// Cell is a 0-indexed (row, column) grid coordinate.
type Cell struct {
	Row int
	Col int
}

// RandomSource is the subset of *rand.Rand the engine draws from.
// Abstracted so tests can script the exact draws.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// Engine owns a square grid of tile values and its open-cell index.
// An Engine is not safe for concurrent use; each session owns its own.
type Engine struct {
	size      int
	grid      [][]int
	open      []Cell
	rng       RandomSource
	spawnFour float64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithRandom sets the random source used by SpawnRandomTile.
func WithRandom(src RandomSource) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSpawnFourProbability overrides the chance of spawning a 4.
// Values outside [0, 1] are clamped.
func WithSpawnFourProbability(p float64) Option {
	return func(e *Engine) {
		e.SetSpawnFourProbability(p)
	}
}

// New creates an engine with an empty size x size grid.
func New(size int, opts ...Option) (*Engine, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	e := &Engine{
		size:      size,
		grid:      newGrid(size),
		spawnFour: DefaultSpawnFourProbability,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		now := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return e, nil
}

// NewSeeded creates an empty engine whose spawns are reproducible for a given seed.
func NewSeeded(size int, seed uint64) (*Engine, error) {
	return New(size, WithSeed(seed))
}

// NewFromGrid creates an engine preloaded with a copy of values.
// The matrix must be square and hold only non-negative integers.
func NewFromGrid(values [][]int, opts ...Option) (*Engine, error) {
	e, err := New(len(values), opts...)
	if err != nil {
		return nil, err
	}

	for r, row := range values {
		if len(row) != e.size {
			return nil, ErrNotSquare
		}
		for c, v := range row {
			if v < 0 {
				return nil, ErrNegativeValue
			}
			e.grid[r][c] = v
		}
	}
	return e, nil
}

func newGrid(size int) [][]int {
	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
	}
	return grid
}

// Size returns the grid dimension.
func (e *Engine) Size() int {
	return e.size
}

// SetSpawnFourProbability changes the chance of spawning a 4 for later spawns.
func (e *Engine) SetSpawnFourProbability(p float64) {
	e.spawnFour = min(max(p, 0), 1)
}

// SpawnFourProbability returns the current chance of spawning a 4.
func (e *Engine) SpawnFourProbability() float64 {
	return e.spawnFour
}

// Value returns the tile at (row, col). Out-of-range coordinates read as 0.
func (e *Engine) Value(row, col int) int {
	if row < 0 || row >= e.size || col < 0 || col >= e.size {
		return 0
	}
	return e.grid[row][col]
}

// Grid returns a copy of the grid.
func (e *Engine) Grid() [][]int {
	out := newGrid(e.size)
	for r := range e.grid {
		copy(out[r], e.grid[r])
	}
	return out
}

// OpenCells returns a copy of the open-cell index as of the last refresh.
func (e *Engine) OpenCells() []Cell {
	out := make([]Cell, len(e.open))
	copy(out, e.open)
	return out
}

// Score returns the sum of every tile on the grid.
func (e *Engine) Score() int {
	total := 0
	for _, row := range e.grid {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// MaxTile returns the highest tile value on the grid.
func (e *Engine) MaxTile() int {
	best := 0
	for _, row := range e.grid {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}

// IsLost reports whether the open-cell index, as last refreshed, is empty.
//
// A full board counts as lost even when a merge is still available.
// Callers wanting a "no legal move" check must build it themselves.
func (e *Engine) IsLost() bool {
	return len(e.open) == 0
}
