// Package config provides YAML-based game configuration loading and
// difficulty presets for 2048.
package config

import (
	"errors"
	"fmt"
	"math/bits"
)

// T2048Config contains all configuration for a 2048 session.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Display DisplayConfig `yaml:"display"`
	Levels  []LevelConfig `yaml:"levels"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Size int `yaml:"size"` // Side length of the square board
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4 (endless mode)
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles placed at the start of a game
}

// DisplayConfig defines the text board layout.
type DisplayConfig struct {
	EmptyCell string `yaml:"empty_cell"` // Glyph drawn for an empty cell
	CellWidth int    `yaml:"cell_width"` // Screen columns per cell, borders included
}

// LevelConfig defines one campaign level.
type LevelConfig struct {
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"` // Tile value that clears the level
	Spawn4 float64 `yaml:"spawn4"` // Chance a spawned tile is a 4 on this level
}

// Validate reports every problem found in the configuration.
func (c T2048Config) Validate() error {
	var errs []error

	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("config: board size %d is below 2", c.Board.Size))
	}
	if !validProbability(c.Spawn.FourProbability) {
		errs = append(errs, fmt.Errorf("config: four_probability %v is outside [0, 1]", c.Spawn.FourProbability))
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Size*c.Board.Size {
		errs = append(errs, fmt.Errorf("config: initial_tiles %d does not fit the board", c.Spawn.InitialTiles))
	}
	if c.Display.CellWidth < 3 {
		errs = append(errs, fmt.Errorf("config: cell_width %d is below 3", c.Display.CellWidth))
	}
	if c.Display.EmptyCell == "" {
		errs = append(errs, errors.New("config: empty_cell must not be empty"))
	}

	for i, lvl := range c.Levels {
		if !isPowerOfTwo(lvl.Target) || lvl.Target < 4 {
			errs = append(errs, fmt.Errorf("config: level %d target %d is not a power of two above 2", i+1, lvl.Target))
		}
		if !validProbability(lvl.Spawn4) {
			errs = append(errs, fmt.Errorf("config: level %d spawn4 %v is outside [0, 1]", i+1, lvl.Spawn4))
		}
	}

	return errors.Join(errs...)
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
