package t2048

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs for the two modes.
const (
	IDCampaign = "2048"
	IDEndless  = "2048_endless"
)

// levelClearDelay is how many ticks the level-cleared overlay stays up (2s at 60fps).
const levelClearDelay = 120

// Game drives one 2048 session on top of a board engine.
type Game struct {
	mode   Mode
	cfg    config.T2048Config
	levels []Level
	eng    *engine.Engine
	tick   uint64

	moves         int
	levelIndex    int // Current level (0-indexed)
	currentTarget int // Current tile target, 0 in endless

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	showOpen        bool // Mark open cells on the board
	levelClearTicks int
}

// Package-level settings applied on the next Reset.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	boardSizeOverride  int
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetBoardSize overrides the configured board size. Values below 2 clear the override.
func SetBoardSize(size int) {
	if size < 2 {
		size = 0
	}
	boardSizeOverride = size
}

// SetStartLevel sets the starting level (1-based). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLogger sets the logger used for session events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the configuration from the current path, preset and size override.
func LoadConfig() config.T2048Config {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultT2048Config()
	}
	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	if boardSizeOverride >= 2 {
		cfg.Board.Size = boardSizeOverride
	}
	return cfg
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = LoadConfig()
	g.levels = levelsFromConfig(g.cfg.Levels)
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	var opts []engine.Option
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(uint64(cfg.Seed)))
	}
	eng, err := engine.New(g.cfg.Board.Size, opts...)
	if err != nil {
		logger.Warn("invalid board size, using default", "size", g.cfg.Board.Size, "err", err)
		g.cfg.Board.Size = engine.DefaultSize
		if eng, err = engine.New(engine.DefaultSize, opts...); err != nil {
			logger.Error("cannot create default board", "err", err)
			panic(err)
		}
	}
	g.eng = eng

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}
	g.loadLevel()

	for range g.cfg.Spawn.InitialTiles {
		g.spawnTile()
	}
	// Build the index even when no tile was placed.
	g.eng.RefreshOpenCells()
	g.gameOver = g.eng.IsLost()

	g.checkScreenSize()

	logger.Info("game started", "mode", g.mode, "size", g.cfg.Board.Size,
		"seed", cfg.Seed, "level", g.levelIndex+1)
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless || len(g.levels) == 0 {
		g.currentTarget = 0 // No target in endless
		g.eng.SetSpawnFourProbability(g.cfg.Spawn.FourProbability)
		return
	}

	level := g.level()
	g.currentTarget = level.Target
	g.eng.SetSpawnFourProbability(level.Spawn4)
}

// level returns the current campaign level, clamped to the last one.
func (g *Game) level() Level {
	return g.levels[min(g.levelIndex, len(g.levels)-1)]
}

// spawnTile refreshes the open-cell index, places one tile and refreshes
// again so IsLost sees the grid as it is now.
func (g *Game) spawnTile() {
	g.eng.RefreshOpenCells()
	if cell, value, err := g.eng.SpawnRandomTile(); err != nil {
		logger.Debug("spawn rejected", "err", err)
	} else {
		logger.Debug("spawned tile", "row", cell.Row, "col", cell.Col, "value", value)
	}
	g.eng.RefreshOpenCells()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardDims()
	minW := boardW + 4
	minH := boardH + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionShowOpen) {
		g.showOpen = !g.showOpen
	}

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared overlay
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Don't process moves if game over or won
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	dir := actionDirection(in)
	moved := dir != engine.DirNone && g.move(dir)

	return core.StepResult{State: g.State(), Moved: moved}
}

// actionDirection picks the move for this frame. Only one move runs per tick.
func actionDirection(in core.InputFrame) engine.Direction {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp
	case in.Has(core.ActionDown):
		return engine.DirDown
	case in.Has(core.ActionLeft):
		return engine.DirLeft
	case in.Has(core.ActionRight):
		return engine.DirRight
	default:
		return engine.DirNone
	}
}

// move applies one move. When the board changes a tile is spawned and the
// loss rule is checked. It reports whether the board changed.
func (g *Game) move(dir engine.Direction) bool {
	if g.gameOver || g.won {
		return false
	}
	if !g.eng.ApplyMove(dir) {
		return false
	}
	g.moves++

	// Check for level target (campaign only)
	if g.mode == ModeCampaign && g.currentTarget > 0 && g.eng.MaxTile() >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
		logger.Info("level cleared", "level", g.levelIndex+1, "target", g.currentTarget, "moves", g.moves)
	}

	g.spawnTile()

	if g.eng.IsLost() {
		g.gameOver = true
		g.levelCleared = false
		logger.Info("game over", "score", g.eng.Score(), "max_tile", g.eng.MaxTile(), "moves", g.moves)
	}
	return true
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		// Completed all levels
		g.won = true
		logger.Info("campaign complete", "score", g.eng.Score(), "moves", g.moves)
		return
	}

	g.levelIndex++
	g.loadLevel()
	// Keep current board and score - just update target
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// BoardSize returns the side length of the board.
func (g *Game) BoardSize() int {
	if g.eng == nil {
		return g.cfg.Board.Size
	}
	return g.eng.Size()
}

// Engine exposes the session's board engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// ShowOpen reports whether open cells are marked on the board.
func (g *Game) ShowOpen() bool {
	return g.showOpen
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		MaxTile:  g.eng.MaxTile(),
		Moves:    g.moves,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
