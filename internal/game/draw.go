package game

import (
	"iter"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// Sprite is a static image id understood by the renderer.
type Sprite int

const (
	SpriteWall Sprite = iota
	SpriteBreakable
	SpriteFood
	SpriteExtraPoints
	SpriteSurvival
	SpritePath
	SpriteAgent
	SpriteAgentShielded
	SpriteEnemy
)

var cellSprites = map[tilemap.Cell]Sprite{
	tilemap.UnbreakableWall:     SpriteWall,
	tilemap.BreakableWall:       SpriteBreakable,
	tilemap.Food:                SpriteFood,
	tilemap.ArtifactExtraPoints: SpriteExtraPoints,
	tilemap.ArtifactSurvival:    SpriteSurvival,
}

// SpriteFor returns the sprite of a map cell. Empty cells have none.
func SpriteFor(cell tilemap.Cell) (Sprite, bool) {
	s, ok := cellSprites[cell]
	return s, ok
}

// DrawRequest asks the renderer to put a sprite in a screen rectangle.
type DrawRequest struct {
	Sprite Sprite
	Tile   tilemap.Coord
	Rect   core.Rect
}

// Body is anything that occupies a tile and knows its screen rectangle.
type Body interface {
	Tile() tilemap.Coord
	Bounds() core.Rect
}

// DrawList yields the frame back to front: map tiles in row-major order, the
// planned path over empty tiles, the ghosts, then the agent.
func (s *Session) DrawList() iter.Seq[DrawRequest] {
	return func(yield func(DrawRequest) bool) {
		tw, th := s.opts.TileW, s.opts.TileH
		for t := range s.board.Tiles() {
			sp, ok := SpriteFor(t.Cell)
			if !ok {
				continue
			}
			if !yield(DrawRequest{Sprite: sp, Tile: t.Coord(), Rect: core.TileRect(t.Col, t.Row, tw, th)}) {
				return
			}
		}

		if len(s.agent.Path) > 1 {
			for _, c := range s.agent.Path[1 : len(s.agent.Path)-1] {
				if cell, _ := s.board.At(c); cell != tilemap.Empty {
					continue
				}
				if !yield(DrawRequest{Sprite: SpritePath, Tile: c, Rect: core.TileRect(c.X, c.Y, tw, th)}) {
					return
				}
			}
		}

		for _, e := range s.enemies {
			if !yield(bodyRequest(SpriteEnemy, e)) {
				return
			}
		}

		agentSprite := SpriteAgent
		if s.agent.HasShield() {
			agentSprite = SpriteAgentShielded
		}
		yield(bodyRequest(agentSprite, s.agent))
	}
}

func bodyRequest(sp Sprite, b Body) DrawRequest {
	return DrawRequest{Sprite: sp, Tile: b.Tile(), Rect: b.Bounds()}
}
