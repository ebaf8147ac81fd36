package engine

import "errors"

var (
	// ErrInvalidSize is returned when a board dimension is not positive.
	ErrInvalidSize = errors.New("engine: board size must be positive")

	// ErrNotSquare is returned when an initial grid is not N x N.
	ErrNotSquare = errors.New("engine: grid is not square")

	// ErrNegativeValue is returned when an initial grid holds a negative value.
	ErrNegativeValue = errors.New("engine: grid holds a negative value")

	// ErrNoOpenCells is returned by SpawnRandomTile when the open-cell index is empty.
	ErrNoOpenCells = errors.New("engine: no open cells to spawn into")

	// ErrStaleOpenCells is returned by SpawnRandomTile when the open-cell
	// index no longer matches the grid. Call RefreshOpenCells first.
	ErrStaleOpenCells = errors.New("engine: open-cell index is stale")
)
