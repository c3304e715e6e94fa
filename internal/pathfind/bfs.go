// Package pathfind plans the agent's route to food with a breadth-first
// search over the tile grid.
package pathfind

import (
	"errors"

	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// ErrNoFoodReachable is returned when the search exhausts every reachable
// tile without meeting food. For a session this ends the level.
var ErrNoFoodReachable = errors.New("pathfind: no food reachable")

// neighbors is the fixed exploration order: west, north, south, east.
// Tie-breaking between equally short routes depends on it.
var neighbors = [4][2]int{
	{-1, 0},
	{0, -1},
	{0, 1},
	{1, 0},
}

// NearestFood returns the shortest route, by tile count, from start to the
// nearest Food tile. The route begins with start and ends on the food.
// Every cell except an unbreakable wall may be crossed.
func NearestFood(m *tilemap.Map, start tilemap.Coord) ([]tilemap.Coord, error) {
	if !m.InBounds(start) {
		return nil, &tilemap.OutOfBoundsError{At: start, Width: m.Width(), Height: m.Height()}
	}

	w := m.Width()
	index := func(c tilemap.Coord) int { return c.Y*w + c.X }

	parent := make([]int, w*m.Height())
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, len(parent))

	queue := []tilemap.Coord{start}
	visited[index(start)] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cell, _ := m.At(cur); cell == tilemap.Food {
			return buildPath(parent, cur, w), nil
		}

		for _, d := range neighbors {
			next := cur.Add(d[0], d[1])
			if !m.InBounds(next) || visited[index(next)] {
				continue
			}
			if cell, _ := m.At(next); !cell.Traversable() {
				continue
			}
			visited[index(next)] = true
			parent[index(next)] = index(cur)
			queue = append(queue, next)
		}
	}

	return nil, ErrNoFoodReachable
}

// buildPath walks parent links back from end and returns the route in
// start-to-end order.
func buildPath(parent []int, end tilemap.Coord, w int) []tilemap.Coord {
	var path []tilemap.Coord
	for i := end.Y*w + end.X; i != -1; i = parent[i] {
		path = append(path, tilemap.C(i%w, i/w))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// Distances returns the BFS step count from start to every tile, indexed
// [row][col], with -1 for tiles that cannot be reached.
func Distances(m *tilemap.Map, start tilemap.Coord) ([][]int, error) {
	if !m.InBounds(start) {
		return nil, &tilemap.OutOfBoundsError{At: start, Width: m.Width(), Height: m.Height()}
	}

	dist := make([][]int, m.Height())
	for y := range dist {
		dist[y] = make([]int, m.Width())
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}

	dist[start.Y][start.X] = 0
	queue := []tilemap.Coord{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range neighbors {
			next := cur.Add(d[0], d[1])
			if !m.InBounds(next) || dist[next.Y][next.X] != -1 {
				continue
			}
			if cell, _ := m.At(next); !cell.Traversable() {
				continue
			}
			dist[next.Y][next.X] = dist[cur.Y][cur.X] + 1
			queue = append(queue, next)
		}
	}
	return dist, nil
}
