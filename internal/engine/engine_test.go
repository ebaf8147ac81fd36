package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := New(DefaultSize)
	require.NoError(t, err)

	assert.Equal(t, 4, e.Size())
	assert.Equal(t, DefaultSpawnFourProbability, e.SpawnFourProbability())
	assert.Equal(t, 0, e.Score())
	for _, row := range e.Grid() {
		assert.Equal(t, []int{0, 0, 0, 0}, row)
	}
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewFromGrid(nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewFromGridValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  [][]int
		wantErr error
	}{
		{"ragged", [][]int{{2, 0}, {0}}, ErrNotSquare},
		{"wide", [][]int{{2, 0, 0}, {0, 0, 0}}, ErrNotSquare},
		{"negative", [][]int{{2, 0}, {0, -4}}, ErrNegativeValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromGrid(tt.values)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewFromGridCopiesInput(t *testing.T) {
	values := [][]int{
		{2, 0},
		{0, 4},
	}
	e := mustGrid(t, values)
	values[0][0] = 1024
	assert.Equal(t, 2, e.Value(0, 0))

	snapshot := e.Grid()
	snapshot[1][1] = 1024
	assert.Equal(t, 4, e.Value(1, 1), "Grid must return a copy")
}

func TestValueOutOfRange(t *testing.T) {
	e := mustGrid(t, [][]int{{2, 4}, {8, 16}})
	assert.Equal(t, 0, e.Value(-1, 0))
	assert.Equal(t, 0, e.Value(0, 2))
}

func TestScoreAndMaxTile(t *testing.T) {
	e := mustGrid(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})
	assert.Equal(t, 4218, e.Score())
	assert.Equal(t, 2048, e.MaxTile())
}

func TestOpenCellsReturnsCopy(t *testing.T) {
	e := mustGrid(t, [][]int{{0, 2}, {2, 0}})
	e.RefreshOpenCells()

	cells := e.OpenCells()
	cells[0] = Cell{Row: 9, Col: 9}
	assert.Equal(t, []Cell{{0, 0}, {1, 1}}, e.OpenCells())
}

func TestFormat(t *testing.T) {
	e := mustGrid(t, [][]int{
		{0, 2, 0},
		{16, 0, 128},
		{0, 0, 2048},
	})
	want := "" +
		"-    2    -    \n" +
		"16   -    128  \n" +
		"-    -    2048 \n"
	assert.Equal(t, want, e.Format())
}

func TestFormatEmpty(t *testing.T) {
	e := mustGrid(t, [][]int{
		{0, 2},
		{4, 0},
	})

	tests := []struct {
		name  string
		glyph string
		want  string
	}{
		{"custom", ".", ".    2    \n4    .    \n"},
		{"multibyte", "·", "·    2    \n4    ·    \n"},
		{"unset", "", "-    2    \n4    -    \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.FormatEmpty(tt.glyph))
		})
	}
}

func TestFormatOpenCells(t *testing.T) {
	e := mustGrid(t, [][]int{
		{0, 2},
		{4, 0},
	})
	e.RefreshOpenCells()
	e.grid[1][1] = 8 // index now stale; markers follow the index

	want := "" +
		"**   2    \n" +
		"4    **   \n"
	assert.Equal(t, want, e.FormatOpenCells())
}
