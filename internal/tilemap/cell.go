// Package tilemap holds the level grid: cell classification, loading from the
// text map format and in-place consumption of tiles.
package tilemap

import (
	"fmt"
	"math"
)

// Cell classifies one tile of the grid. The numeric values are the ones used
// by map files.
type Cell int

const (
	Empty               Cell = iota // 0
	UnbreakableWall                 // 1
	BreakableWall                   // 2
	Food                            // 3
	ArtifactExtraPoints             // 4 - five bonus points
	ArtifactSurvival                // 5 - survive one ghost
)

// cellCount is the number of valid cell values.
const cellCount = 6

// Valid reports whether c is one of the enumerated cell values.
func (c Cell) Valid() bool {
	return c >= Empty && c < cellCount
}

// IsWall reports whether c is a wall of either kind.
func (c Cell) IsWall() bool {
	return c == UnbreakableWall || c == BreakableWall
}

// Traversable reports whether route planning may pass through c.
// Everything but an unbreakable wall can be walked, broken or eaten.
func (c Cell) Traversable() bool {
	return c != UnbreakableWall
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case UnbreakableWall:
		return "wall"
	case BreakableWall:
		return "breakable"
	case Food:
		return "food"
	case ArtifactExtraPoints:
		return "extra-points"
	case ArtifactSurvival:
		return "survival"
	default:
		return fmt.Sprintf("cell(%d)", int(c))
	}
}

// Coord is a discrete tile coordinate. X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// TileOf returns the tile containing the continuous position (x, y).
func TileOf(x, y float64) Coord {
	return Coord{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Tile is one non-empty cell yielded by Map.Tiles.
type Tile struct {
	Row  int
	Col  int
	Cell Cell
}

// Coord returns the tile position as a Coord.
func (t Tile) Coord() Coord {
	return Coord{X: t.Col, Y: t.Row}
}
