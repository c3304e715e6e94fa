package registry

import (
	"bytes"
	"embed"
	"path"

	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

//go:embed maps/*.txt
var builtinMaps embed.FS

func init() {
	registerEmbedded(MapInfo{Name: "classic", Title: "Classic", Width: 16, Height: 16})
	registerEmbedded(MapInfo{Name: "open", Title: "Open Field", Width: 16, Height: 16})
	registerEmbedded(MapInfo{Name: "maze", Title: "Maze", Width: 16, Height: 16})
}

// registerEmbedded registers maps/<name>.txt.
func registerEmbedded(info MapInfo) {
	file := path.Join("maps", info.Name+".txt")
	Register(info, func(w, h int) (*tilemap.Map, error) {
		data, err := builtinMaps.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return tilemap.Parse(bytes.NewReader(data), w, h)
	})
}
