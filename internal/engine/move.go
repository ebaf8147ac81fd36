package engine

import (
	"slices"
	"strings"
)

// Direction is a swipe direction, identified by its first letter.
type Direction byte

const (
	DirNone  Direction = 0
	DirLeft  Direction = 'L'
	DirUp    Direction = 'U'
	DirRight Direction = 'R'
	DirDown  Direction = 'D'
)

// Directions lists the four valid directions.
var Directions = []Direction{DirLeft, DirUp, DirRight, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "None"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return slices.Contains(Directions, d)
}

// ParseDirection maps a first letter (L, U, R, D) or a direction name,
// in any case, to a direction. Anything else yields DirNone, which
// ApplyMove ignores.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return DirLeft
	case "u", "up":
		return DirUp
	case "r", "right":
		return DirRight
	case "d", "down":
		return DirDown
	default:
		return DirNone
	}
}

// ApplyMove slides the grid in direction d and reports whether any tile changed.
//
// Every direction rotates its axis onto the left edge, runs
// swipe, merge, swipe, then rotates back. An unrecognized direction
// is a silent no-op.
func (e *Engine) ApplyMove(d Direction) bool {
	var before, after int
	switch d {
	case DirLeft:
		before, after = 0, 0
	case DirRight:
		before, after = 2, 2
	case DirUp:
		before, after = 3, 1
	case DirDown:
		before, after = 1, 3
	default:
		return false
	}

	prev := e.Grid()

	e.rotate(before)
	e.SwipeLeft()
	e.MergeLeft()
	e.SwipeLeft()
	e.rotate(after)

	return !gridsEqual(prev, e.grid)
}

func gridsEqual(a, b [][]int) bool {
	return slices.EqualFunc(a, b, slices.Equal[[]int])
}
