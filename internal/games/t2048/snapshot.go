package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	Level   int    // Current level (1-indexed for display), 0 for endless
	Target  int    // Current target tile value
	Score   int
	Moves   int
	Board   [][]int // Copy of the grid
	MaxTile int     // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	level := g.levelIndex + 1
	if g.mode == ModeEndless {
		level = 0
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   level,
		Target:  g.currentTarget,
		Score:   g.eng.Score(),
		Moves:   g.moves,
		Board:   g.eng.Grid(),
		MaxTile: g.eng.MaxTile(),
		State:   state,
	}
}
