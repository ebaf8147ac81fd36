// Package t2048 implements the 2048 puzzle session with campaign and endless modes.
package t2048

import "github.com/vovakirdan/tui-2048/internal/config"

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// levelsFromConfig numbers the configured levels from 1.
func levelsFromConfig(cfgs []config.LevelConfig) []Level {
	levels := make([]Level, len(cfgs))
	for i, lc := range cfgs {
		levels[i] = Level{
			ID:     i + 1,
			Name:   lc.Name,
			Target: lc.Target,
			Spawn4: lc.Spawn4,
		}
	}
	return levels
}

// Levels returns the campaign levels for the current settings.
func Levels() []Level {
	return levelsFromConfig(LoadConfig().Levels)
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(LoadConfig().Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	levels := Levels()
	if index < 0 || index >= len(levels) {
		return nil
	}
	return &levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}
