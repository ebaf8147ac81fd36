package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
// It mirrors defaults/t2048.yaml and is used when the embedded file cannot be parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size: 4,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
			InitialTiles:    2,
		},
		Display: DisplayConfig{
			EmptyCell: "-",
			CellWidth: 6,
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", Target: 128, Spawn4: 0.10},
			{Name: "Getting Started", Target: 256, Spawn4: 0.10},
			{Name: "Building Momentum", Target: 512, Spawn4: 0.10},
			{Name: "The Climb", Target: 1024, Spawn4: 0.10},
			{Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
			{Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
			{Name: "Master Class", Target: 8192, Spawn4: 0.15},
			{Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
			{Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
			{Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
		},
	}
}
