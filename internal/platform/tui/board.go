package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/game"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// glyph is how a sprite looks in a terminal cell. Solid glyphs fill the
// whole tile rectangle; others sit in its first column.
type glyph struct {
	r     rune
	solid bool
	color core.Color
}

var glyphs = map[game.Sprite]glyph{
	game.SpriteWall:          {'█', true, core.ColorBlue},
	game.SpriteBreakable:     {'▒', true, core.ColorOrange},
	game.SpriteFood:          {'•', false, core.ColorWhite},
	game.SpriteExtraPoints:   {'$', false, core.ColorGreen},
	game.SpriteSurvival:      {'+', false, core.ColorCyan},
	game.SpritePath:          {'·', false, core.ColorGray},
	game.SpriteAgent:         {'C', false, core.ColorYellow},
	game.SpriteAgentShielded: {'C', false, core.ColorBrightYellow},
	game.SpriteEnemy:         {'M', false, core.ColorRed},
}

// boardSize returns the board size in screen cells.
func boardSize(s *game.Session) (w, h int) {
	tw, th := s.TileSize()
	b := s.Board()
	return b.Width() * tw, b.Height() * th
}

// drawBoard paints every draw request of s with the board's top-left corner
// at origin.
func drawBoard(dst *core.Screen, s *game.Session, origin core.Rect) {
	for req := range s.DrawList() {
		g, ok := glyphs[req.Sprite]
		if !ok {
			continue
		}
		r := req.Rect.Offset(origin.X, origin.Y)
		if g.solid {
			dst.DrawRect(r, core.Cell{Rune: g.r, Color: g.color})
			continue
		}
		dst.DrawRect(r, core.Cell{Rune: ' '})
		dst.SetCell(r.X, r.Y, core.Cell{Rune: g.r, Color: g.color})
	}
}

// drawHUD writes the status line and separator.
func drawHUD(dst *core.Screen, snap game.Snapshot, mapName string) {
	shield := "no"
	if snap.Shield {
		shield = "yes"
	}
	mode := "manual"
	if snap.Autopilot {
		mode = "autopilot"
	}
	next := "-"
	if snap.Distance >= 0 {
		next = fmt.Sprintf("%d", snap.Distance)
	}

	hud := fmt.Sprintf(" Pacman %s  Score: %d  Food: %d  Shield: %s  Next: %s  [%s]",
		mapName, snap.Score, snap.FoodLeft, shield, next, mode)
	dst.DrawText(0, 0, hud, core.ColorYellow)
	for x := range dst.Width() {
		dst.SetCell(x, 1, core.Cell{Rune: '─', Color: core.ColorGray})
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string, color core.Color) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, line1, color)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

// overlayFor returns the overlay text for a finished session.
func overlayFor(o game.Outcome) (title, detail string, color core.Color) {
	switch o.Kind {
	case game.KindVictory:
		return "You Win!", fmt.Sprintf("Score: %d  R restart  Q quit", o.Score), core.ColorGreen
	case game.KindDefeat:
		return "Caught by a ghost", fmt.Sprintf("Score: %d  R restart  Q quit", o.Score), core.ColorRed
	case game.KindUnreachable:
		return "No food reachable", fmt.Sprintf("Score: %d  R restart  Q quit", o.Score), core.ColorMagenta
	default:
		return "Game Over", fmt.Sprintf("Score: %d", o.Score), core.ColorDefault
	}
}
