package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

type fakeReader map[string][]storage.ScoreEntry

func (f fakeReader) TopScores(mode string, limit int) ([]storage.ScoreEntry, error) {
	entries := f[mode]
	return entries[:min(limit, len(entries))], nil
}

func TestScoreboardRowsAndModeSwitch(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	reader := fakeReader{
		"2048": {
			{Mode: "2048", Score: 3000, MaxTile: 1024, Moves: 400, BoardSize: 4, CreatedAt: when},
			{Mode: "2048", Score: 1000, MaxTile: 256, Moves: 150, BoardSize: 5, CreatedAt: when},
		},
		"2048_endless": {
			{Mode: "2048_endless", Score: 9000, MaxTile: 4096, Moves: 900, BoardSize: 4, CreatedAt: when},
		},
	}

	m := NewScoreboardModel(reader, 120, 30)
	require.GreaterOrEqual(t, len(m.modes), 2)
	require.Equal(t, "2048", m.modes[0].ID)

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "3000", "1024", "400", "4x4", "Mar 01 12:30"}, []string(rows[0]))
	assert.Equal(t, "5x5", rows[1][4])

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "2048_endless", m.modes[m.modeCursor].ID)
	assert.Len(t, m.table.Rows(), 1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.modeCursor)

	assert.Contains(t, m.View(), "HIGH SCORES")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.Empty(t, m.table.Rows())
	assert.Contains(t, m.View(), "No scores recorded yet")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, _ = m.Update(runeKey('q'))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}
