package t2048

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// isolateConfig hides user and local config files and clears package settings.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	SetConfigPath("")
	SetDifficultyPreset("")
	SetBoardSize(0)
	SetStartLevel(0)
	t.Cleanup(func() {
		SetDifficultyPreset("")
		SetBoardSize(0)
		SetStartLevel(0)
	})
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	isolateConfig(t)
	g.Reset(testRuntime(seed))
	return g
}

// loadGrid replaces the session board with a fixed grid.
func loadGrid(t *testing.T, g *Game, grid [][]int) {
	t.Helper()
	eng, err := engine.NewFromGrid(grid,
		engine.WithSeed(7),
		engine.WithSpawnFourProbability(g.eng.SpawnFourProbability()))
	require.NoError(t, err)
	eng.RefreshOpenCells()
	g.eng = eng
	g.cfg.Board.Size = len(grid)
}

func countTiles(grid [][]int) int {
	n := 0
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestResetSpawnsInitialTiles(t *testing.T) {
	g := newTestGame(t, New(), 42)

	grid := g.eng.Grid()
	assert.Equal(t, 2, countTiles(grid))
	for _, row := range grid {
		for _, v := range row {
			assert.Contains(t, []int{0, 2, 4}, v)
		}
	}
	assert.Len(t, g.eng.OpenCells(), 14, "open cells refreshed after spawning")
	assert.False(t, g.State().GameOver)
}

func TestResetWithoutInitialTiles(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn:\n  initial_tiles: 0\n"), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	for _, g := range []*Game{New(), NewEndless()} {
		g.Reset(testRuntime(42))

		assert.Zero(t, countTiles(g.eng.Grid()), g.ID())
		assert.Len(t, g.eng.OpenCells(), 16, g.ID())
		assert.False(t, g.State().GameOver, g.ID())

		// The first move on an empty board changes nothing.
		res := g.Step(press(core.ActionLeft))
		assert.False(t, res.Moved, g.ID())
		assert.False(t, res.State.GameOver, g.ID())
	}
}

func TestDeterministicReset(t *testing.T) {
	isolateConfig(t)

	g1 := New()
	g1.Reset(testRuntime(12345))
	g2 := New()
	g2.Reset(testRuntime(12345))

	if diff := cmp.Diff(g1.eng.Grid(), g2.eng.Grid()); diff != "" {
		t.Errorf("same seed should produce same initial board (-g1 +g2):\n%s", diff)
	}
}

func TestMoveSpawnsOnlyWhenBoardChanges(t *testing.T) {
	g := newTestGame(t, NewEndless(), 1)
	loadGrid(t, g, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(press(core.ActionLeft))
	assert.False(t, res.Moved)
	assert.Equal(t, 0, res.State.Moves)
	assert.Equal(t, 1, countTiles(g.eng.Grid()))

	res = g.Step(press(core.ActionRight))
	assert.True(t, res.Moved)
	assert.Equal(t, 1, res.State.Moves)
	assert.Equal(t, 2, g.eng.Value(0, 3))
	assert.Equal(t, 2, countTiles(g.eng.Grid()), "one tile spawned")
	assert.Len(t, g.eng.OpenCells(), 14)
}

func TestGameOverWhenBoardFills(t *testing.T) {
	g := newTestGame(t, NewEndless(), 1)
	loadGrid(t, g, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	})

	res := g.Step(press(core.ActionRight))
	require.True(t, res.Moved)
	assert.True(t, res.State.GameOver)
	assert.True(t, g.eng.IsLost())
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	res = g.Step(press(core.ActionLeft))
	assert.False(t, res.Moved, "no moves after game over")
}

func TestCampaignProgression(t *testing.T) {
	g := newTestGame(t, New(), 42)
	loadGrid(t, g, [][]int{
		{64, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.Equal(t, 128, g.currentTarget)

	g.Step(press(core.ActionLeft))
	require.True(t, g.levelCleared, "reaching the target clears the level")
	assert.Equal(t, StateLevelCleared, g.Snapshot().State)
	assert.True(t, g.State().Paused)

	for range levelClearDelay {
		g.Step(core.NewInputFrame())
	}

	assert.Equal(t, 1, g.levelIndex)
	assert.Equal(t, 256, g.currentTarget)
	assert.Equal(t, 128, g.eng.MaxTile(), "board is kept between levels")
}

func TestCampaignWin(t *testing.T) {
	g := newTestGame(t, New(), 42)
	g.levelIndex = len(g.levels) - 1
	g.loadLevel()
	loadGrid(t, g, [][]int{
		{4096, 4096, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(press(core.ActionLeft))
	for range levelClearDelay {
		g.Step(core.NewInputFrame())
	}

	assert.True(t, g.won)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateWin, g.Snapshot().State)
}

func TestEndlessModeNoWin(t *testing.T) {
	g := newTestGame(t, NewEndless(), 42)
	loadGrid(t, g, [][]int{
		{8192, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(press(core.ActionDown))

	assert.False(t, g.levelCleared, "endless mode should not clear levels")
	assert.False(t, g.won, "endless mode should not have a win state")
	assert.Equal(t, 0, g.currentTarget)
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, NewEndless(), 3)
	before := g.eng.Grid()

	g.Step(press(core.ActionPause))
	require.True(t, g.State().Paused)

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		res := g.Step(press(a))
		assert.False(t, res.Moved)
	}
	assert.Equal(t, before, g.eng.Grid())

	g.Step(press(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestStartLevelAndOverrides(t *testing.T) {
	isolateConfig(t)

	SetStartLevel(3)
	g := New()
	g.Reset(testRuntime(9))
	assert.Equal(t, 512, g.currentTarget)
	assert.Equal(t, 0, GetStartLevel(), "start level is consumed by Reset")

	SetBoardSize(6)
	g.Reset(testRuntime(9))
	assert.Equal(t, 6, g.eng.Size())
	assert.Len(t, g.Snapshot().Board, 6)

	SetBoardSize(0)
	SetDifficultyPreset("easy")
	g.Reset(testRuntime(9))
	assert.Equal(t, 5, g.eng.Size())

	SetDifficultyPreset("hard")
	e := NewEndless()
	e.Reset(testRuntime(9))
	assert.InDelta(t, 0.25, e.eng.SpawnFourProbability(), 1e-9)
}

func TestTooSmallScreen(t *testing.T) {
	isolateConfig(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	before := g.eng.Grid()
	g.Step(press(core.ActionLeft))
	assert.Equal(t, before, g.eng.Grid())
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, New(), 42)

	snap := g.Snapshot()
	assert.Equal(t, "campaign", snap.Mode)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 128, snap.Target)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, g.eng.Score(), snap.Score)

	snap.Board[0][0] = 99
	assert.NotEqual(t, 99, g.eng.Value(0, 0), "snapshot board is a copy")

	e := newTestGame(t, NewEndless(), 42)
	assert.Equal(t, 0, e.Snapshot().Level)
	assert.Equal(t, 0, e.Snapshot().Target)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, NewEndless(), 42)
	loadGrid(t, g, [][]int{
		{1024, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Score: 1030")
	assert.Contains(t, out, "1024")
	assert.Contains(t, out, "Endless")
	assert.NotContains(t, out, openMarker)

	g.Step(press(core.ActionShowOpen))
	require.True(t, g.ShowOpen())
	g.Render(screen)
	assert.Equal(t, 13, strings.Count(screen.String(), openMarker))
}

func TestRenderTileColors(t *testing.T) {
	g := newTestGame(t, NewEndless(), 42)
	loadGrid(t, g, [][]int{
		{2048, 0},
		{0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := range screen.Height() {
		row := screen.Row(y)
		if i := strings.Index(row, "2048"); i >= 0 && y > hudHeight {
			x := utf8.RuneCountInString(row[:i])
			assert.Equal(t, core.TileColor(2048), screen.GetCell(x, y).Color)
			found = true
		}
	}
	assert.True(t, found, "2048 tile drawn on the board")
}

func TestLevels(t *testing.T) {
	isolateConfig(t)

	assert.Equal(t, 10, LevelCount())
	names := LevelNames()
	require.Len(t, names, 10)
	assert.Equal(t, "Warm-up", names[0])

	lvl := GetLevel(4)
	require.NotNil(t, lvl)
	assert.Equal(t, 5, lvl.ID)
	assert.Equal(t, 2048, lvl.Target)
	assert.Nil(t, GetLevel(10))
}

func TestRegistryIDs(t *testing.T) {
	assert.Equal(t, IDCampaign, New().ID())
	assert.Equal(t, IDEndless, NewEndless().ID())
	assert.Equal(t, "2048 (Endless)", NewEndless().Title())
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, New(), 5)
	before := g.eng.Grid()

	g.Resize(20, 10)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.Equal(t, before, g.eng.Grid())
	assert.Equal(t, 4, g.BoardSize())
}
