package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *Store, mode string, score int) string {
	t.Helper()
	runID, err := store.SaveScore(Run{Mode: mode, Score: score, MaxTile: 128, Moves: 10, BoardSize: 4})
	require.NoError(t, err)
	return runID
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "2048", 100)
	saveRun(t, store, "2048", 50)
	saveRun(t, store, "2048", 200)
	saveRun(t, store, "2048_endless", 500)

	scores, err := store.TopScores("2048", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Should be sorted descending
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at is parsed")

	endless, err := store.TopScores("2048_endless", 10)
	require.NoError(t, err)
	assert.Len(t, endless, 1)
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	run := Run{Mode: "2048", Score: 2100, MaxTile: 1024, Moves: 321, BoardSize: 5}
	runID, err := store.SaveScore(run)
	require.NoError(t, err)

	_, err = uuid.Parse(runID)
	require.NoError(t, err, "run id is a uuid")

	entry, err := store.ScoreByRunID(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, entry.RunID)
	assert.Equal(t, run.Mode, entry.Mode)
	assert.Equal(t, run.Score, entry.Score)
	assert.Equal(t, run.MaxTile, entry.MaxTile)
	assert.Equal(t, run.Moves, entry.Moves)
	assert.Equal(t, run.BoardSize, entry.BoardSize)

	other := saveRun(t, store, "2048", 1)
	assert.NotEqual(t, runID, other)

	_, err = store.ScoreByRunID(uuid.NewString())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		saveRun(t, store, "2048", i*10)
	}

	scores, err := store.TopScores("2048", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 190, scores[0].Score)

	defaults, err := store.TopScores("2048", 0)
	require.NoError(t, err)
	assert.Len(t, defaults, 10, "non-positive limit falls back to 10")

	all, err := store.AllScores("2048")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "no scores yet")

	saveRun(t, store, "2048", 100)
	saveRun(t, store, "2048", 300)
	saveRun(t, store, "2048", 200)

	high, err = store.HighScore("2048")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "2048", 100)
	saveRun(t, store, "2048_endless", 100)

	require.NoError(t, store.ClearScores("2048"))

	scores, err := store.TopScores("2048", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	endless, err := store.TopScores("2048_endless", 10)
	require.NoError(t, err)
	assert.Len(t, endless, 1, "other modes are untouched")
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("2048")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	_, err = store.SaveScore(Run{Mode: "2048", Score: 100, MaxTile: 64, Moves: 30, BoardSize: 4})
	require.NoError(t, err)
	_, err = store.SaveScore(Run{Mode: "2048", Score: 300, MaxTile: 256, Moves: 70, BoardSize: 4})
	require.NoError(t, err)
	saveRun(t, store, "2048_endless", 40)

	stats, err := store.GetModeStats("2048")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 256, stats.BestTile)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(100), stats.TotalMoves)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllModesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all["2048_endless"].GamesCount)
}

func TestStoreMigrations(t *testing.T) {
	store := openTestStore(t)

	version, dirty, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, store.MigrateUp(), "re-running migrations is a no-op")

	require.NoError(t, store.MigrateDown())
	version, _, err = store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)

	_, err = store.SaveScore(Run{Mode: "2048", Score: 1})
	assert.Error(t, err, "scores table is gone after rolling back")

	require.NoError(t, store.MigrateUp())
	saveRun(t, store, "2048", 1)
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	saveRun(t, store, "2048", 42)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("2048")
	require.NoError(t, err)
	assert.Equal(t, 42, high)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
