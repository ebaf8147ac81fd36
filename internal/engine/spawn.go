package engine

import "slices"

// RefreshOpenCells rebuilds the open-cell index by scanning the grid in
// row-major order. The order is deterministic so seeded spawns reproduce.
func (e *Engine) RefreshOpenCells() {
	e.open = e.scanOpenCells()
}

func (e *Engine) scanOpenCells() []Cell {
	open := make([]Cell, 0, e.size*e.size)
	for r, row := range e.grid {
		for c, v := range row {
			if v == 0 {
				open = append(open, Cell{Row: r, Col: c})
			}
		}
	}
	return open
}

// SpawnRandomTile writes a 2 or a 4 into a random cell of the open-cell index.
//
// It makes exactly two draws, in order: IntN picks the cell, then Float64
// picks the value (below the four-probability means 4, otherwise 2).
// The index must reflect the current grid; this method does not refresh it.
// An empty index yields ErrNoOpenCells and a stale one ErrStaleOpenCells;
// either way the grid is untouched and nothing is drawn.
func (e *Engine) SpawnRandomTile() (Cell, int, error) {
	if len(e.open) == 0 {
		return Cell{}, 0, ErrNoOpenCells
	}
	if !slices.Equal(e.open, e.scanOpenCells()) {
		return Cell{}, 0, ErrStaleOpenCells
	}

	cell := e.open[e.rng.IntN(len(e.open))]

	value := 2
	if e.rng.Float64() < e.spawnFour {
		value = 4
	}

	e.grid[cell.Row][cell.Col] = value
	return cell, value, nil
}
