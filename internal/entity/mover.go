package entity

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// Rule is what happens when a body tries to enter a cell.
type Rule struct {
	Blocked bool // the move is refused, position unchanged
	Consume bool // the tile becomes empty
	Points  int  // score awarded
	Food    bool // counts against the remaining food
	Shield  bool // grants the survival ability
}

// Policy maps destination cells to rules. Cells without an entry are walked
// into with no side effect.
type Policy map[tilemap.Cell]Rule

// Rule returns the rule for entering cell.
func (p Policy) Rule(cell tilemap.Cell) Rule {
	return p[cell]
}

// AgentPolicy is the agent's destination table.
var AgentPolicy = Policy{
	tilemap.UnbreakableWall:     {Blocked: true},
	tilemap.BreakableWall:       {Consume: true},
	tilemap.Food:                {Consume: true, Points: 1, Food: true},
	tilemap.ArtifactExtraPoints: {Consume: true, Points: 5},
	tilemap.ArtifactSurvival:    {Consume: true, Shield: true},
}

// EnemyPolicy is the enemies' destination table: walls of either kind block,
// nothing is ever consumed.
var EnemyPolicy = Policy{
	tilemap.UnbreakableWall: {Blocked: true},
	tilemap.BreakableWall:   {Blocked: true},
}

// Move describes one resolved movement step.
type Move struct {
	X, Y    float64 // tentative position after clamping
	Tile    tilemap.Coord
	Cell    tilemap.Cell
	Rule    Rule
	Clamped bool // the tentative position crossed the map boundary
}

// Mover holds a body's continuous position and turns a direction into
// sub-tile displacement.
type Mover struct {
	X, Y     float64
	Dir      Direction
	Velocity float64 // fraction of a tile per tick

	// Rect is the screen rectangle of the current tile.
	Rect core.Rect

	tileW, tileH int
	policy       Policy
}

// NewMover creates a mover at (x, y) with the given velocity, tile size in
// screen cells and destination policy.
func NewMover(x, y, velocity float64, tileW, tileH int, policy Policy) Mover {
	mv := Mover{
		Velocity: velocity,
		tileW:    tileW,
		tileH:    tileH,
		policy:   policy,
	}
	mv.SetCoord(x, y)
	return mv
}

// SetCoord moves the body to (x, y) and refreshes its screen rectangle.
func (mv *Mover) SetCoord(x, y float64) {
	mv.X, mv.Y = x, y
	t := mv.Tile()
	mv.Rect = core.TileRect(t.X, t.Y, mv.tileW, mv.tileH)
}

// Tile returns the discrete tile the body occupies.
func (mv *Mover) Tile() tilemap.Coord {
	return tilemap.TileOf(mv.X, mv.Y)
}

// Plan computes where the current direction leads this tick: displace by
// velocity, clamp to the grid, classify the destination tile.
func (mv *Mover) Plan(m *tilemap.Map) (Move, error) {
	dx, dy := mv.Dir.Delta()
	x := mv.X + dx*mv.Velocity
	y := mv.Y + dy*mv.Velocity

	maxX := float64(m.Width() - 1)
	maxY := float64(m.Height() - 1)
	cx := core.ClampF(x, 0, maxX)
	cy := core.ClampF(y, 0, maxY)

	cell, err := m.Get(cx, cy)
	if err != nil {
		return Move{}, err
	}

	return Move{
		X:       cx,
		Y:       cy,
		Tile:    tilemap.TileOf(cx, cy),
		Cell:    cell,
		Rule:    mv.policy.Rule(cell),
		Clamped: cx != x || cy != y,
	}, nil
}

// Step plans the move and commits it unless the destination blocks.
func (mv *Mover) Step(m *tilemap.Map) (Move, error) {
	move, err := mv.Plan(m)
	if err != nil {
		return Move{}, err
	}
	if move.Rule.Blocked {
		mv.SetCoord(mv.X, mv.Y)
	} else {
		mv.SetCoord(move.X, move.Y)
	}
	return move, nil
}

// Bounds returns the screen rectangle of the occupied tile.
func (mv *Mover) Bounds() core.Rect {
	return mv.Rect
}
