package engine

// SwipeLeft compacts the non-zero tiles of every row toward column 0,
// keeping their order. No tiles combine.
func (e *Engine) SwipeLeft() {
	for _, row := range e.grid {
		write := 0
		for _, v := range row {
			if v != 0 {
				row[write] = v
				write++
			}
		}
		for c := write; c < len(row); c++ {
			row[c] = 0
		}
	}
}

// MergeLeft combines equal neighbours in a single left-to-right pass over
// raw pairs: the left cell doubles and the right cell empties.
// Merged output is never re-scanned, so [2 2 2 2] becomes [4 0 4 0].
func (e *Engine) MergeLeft() {
	for _, row := range e.grid {
		for c := 0; c+1 < len(row); c++ {
			if row[c] == row[c+1] {
				row[c] += row[c+1]
				row[c+1] = 0
			}
		}
	}
}

// Transpose replaces the grid with its transpose.
func (e *Engine) Transpose() {
	// Reads depend on original values, so fill a full copy first.
	tmp := newGrid(e.size)
	for r := range e.size {
		for c := range e.size {
			tmp[r][c] = e.grid[c][r]
		}
	}
	for r := range e.size {
		copy(e.grid[r], tmp[r])
	}
}

// FlipRows reverses every row in place.
func (e *Engine) FlipRows() {
	for _, row := range e.grid {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// RotateBoard rotates the grid 90 degrees clockwise.
func (e *Engine) RotateBoard() {
	e.Transpose()
	e.FlipRows()
}

// rotate applies RotateBoard n times.
func (e *Engine) rotate(n int) {
	for range n {
		e.RotateBoard()
	}
}
