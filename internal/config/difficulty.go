package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Board and spawn settings changed by the presets.
const (
	easyBoardSize    = 5
	hardSpawn4       = 0.25
	hardLevelSpawn4  = 0.10 // Added to every campaign level on hard
	maxSpawnFourProb = 1.0
)

// ParseDifficulty converts a flag value to a preset.
// The empty string means "keep the config as loaded".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Easy plays on a larger board. Hard spawns more 4s everywhere.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Size = max(cfg.Board.Size, easyBoardSize)
	case DifficultyHard:
		cfg.Spawn.FourProbability = max(cfg.Spawn.FourProbability, hardSpawn4)
		for i := range cfg.Levels {
			cfg.Levels[i].Spawn4 = min(cfg.Levels[i].Spawn4+hardLevelSpawn4, maxSpawnFourProb)
		}
	}
}
