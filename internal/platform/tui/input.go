package tui

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/entity"
	"github.com/vovakirdan/tui-pacman/internal/game"
)

var actionDirs = map[core.Action]entity.Direction{
	core.ActionEast:  entity.DirEast,
	core.ActionSouth: entity.DirSouth,
	core.ActionWest:  entity.DirWest,
	core.ActionNorth: entity.DirNorth,
}

// sessionInput converts the actions collected since the last tick into
// session input. The latest direction wins; Stop beats any direction.
func sessionInput(f core.InputFrame) game.Input {
	return game.Input{
		Dir:  actionDirs[f.Direction()],
		Stop: f.Has(core.ActionStop),
		Quit: f.Has(core.ActionQuit),
	}
}
