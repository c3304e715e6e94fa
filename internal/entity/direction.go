// Package entity implements the moving bodies of a level: the agent and the
// enemies. Both share one Mover and differ only in their destination policy
// and in how they pick a direction.
package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// Direction is a movement direction. The numeric values match the classic
// game's encoding.
type Direction int

const (
	DirIdle  Direction = iota // 0
	DirEast                   // 1
	DirSouth                  // 2
	DirWest                   // 3
	DirNorth                  // 4
)

// Delta returns the unit vector of d in tile units. Y grows southward.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	case DirNorth:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirIdle:
		return "idle"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	case DirNorth:
		return "north"
	default:
		return "unknown"
	}
}

// RandomDirection picks one of the four cardinal directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(1 + rng.Intn(4))
}

// Toward returns the direction that takes a body from tile from toward tile
// to, correcting the horizontal offset first. Equal tiles give DirIdle.
func Toward(from, to tilemap.Coord) Direction {
	switch {
	case to.X > from.X:
		return DirEast
	case to.X < from.X:
		return DirWest
	case to.Y > from.Y:
		return DirSouth
	case to.Y < from.Y:
		return DirNorth
	default:
		return DirIdle
	}
}
