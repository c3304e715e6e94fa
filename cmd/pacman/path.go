package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/pathfind"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the route from the agent spawn to the nearest food",
	Long: `Runs the autopilot's breadth-first search once from the configured
agent spawn and prints the route and the board with the route marked.

Examples:
  pacman path
  pacman path --map maze`,
	Args: cobra.NoArgs,
	Run:  runPath,
}

func runPath(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	m, name, err := loadBoard(cfg)
	if err != nil {
		fail("%v", err)
	}

	start := tilemap.TileOf(cfg.Agent.X, cfg.Agent.Y)
	route, err := pathfind.NearestFood(m, start)
	switch {
	case errors.Is(err, pathfind.ErrNoFoodReachable):
		fmt.Printf("%s: no food reachable from %s\n", name, start)
		return
	case err != nil:
		fail("%v", err)
	}

	steps := make([]string, len(route))
	for i, c := range route {
		steps[i] = c.String()
	}
	fmt.Printf("%s: %d hops from %s\n", name, len(route)-1, start)
	fmt.Println(strings.Join(steps, " -> "))
	fmt.Println()
	fmt.Println(markRoute(m, route))
}

// markRoute draws the board as text with '@' at the start, '*' on the route
// and '#' on walls.
func markRoute(m *tilemap.Map, route []tilemap.Coord) string {
	marks := make(map[tilemap.Coord]rune, len(route))
	for _, c := range route {
		marks[c] = '*'
	}
	marks[route[0]] = '@'

	var sb strings.Builder
	for y := range m.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range m.Width() {
			c := tilemap.C(x, y)
			if r, ok := marks[c]; ok {
				sb.WriteRune(r)
				continue
			}
			cell, _ := m.At(c)
			sb.WriteRune(cellRune(cell))
		}
	}
	return sb.String()
}

func cellRune(c tilemap.Cell) rune {
	switch c {
	case tilemap.UnbreakableWall:
		return '#'
	case tilemap.BreakableWall:
		return '%'
	case tilemap.Food:
		return '.'
	case tilemap.ArtifactExtraPoints:
		return '$'
	case tilemap.ArtifactSurvival:
		return '+'
	default:
		return ' '
	}
}
