package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Map is a fixed-size grid of cells indexed [row][col].
// The dimensions are set at construction and never change.
type Map struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates an all-empty map of w columns and h rows.
func New(w, h int) *Map {
	m := &Map{width: w, height: h}
	m.cells = make([][]Cell, h)
	for y := range m.cells {
		m.cells[y] = make([]Cell, w)
	}
	return m
}

// FromRows creates a map sized to rows and loads it.
// Every row must have the length of the first one.
func FromRows(rows [][]int) (*Map, error) {
	if len(rows) == 0 {
		return nil, &MapFormatError{Reason: "no rows"}
	}
	m := New(len(rows[0]), len(rows))
	if err := m.Load(rows); err != nil {
		return nil, err
	}
	return m, nil
}

// Parse reads the text map format: one row per line, whitespace-separated
// integers in 0..5. Trailing blank lines are ignored. The row and column
// count must equal w and h.
func Parse(r io.Reader, w, h int) (*Map, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: reading map: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]int, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &MapFormatError{Line: i + 1, Column: j + 1, Reason: fmt.Sprintf("%q is not an integer", f)}
			}
			row[j] = v
		}
		rows[i] = row
	}

	m := New(w, h)
	if err := m.Load(rows); err != nil {
		return nil, err
	}
	return m, nil
}

// Load replaces the grid contents with rows. It fails with a MapFormatError
// when the row count, a column count or a value is invalid; the map is left
// untouched in that case.
func (m *Map) Load(rows [][]int) error {
	if len(rows) != m.height {
		return &MapFormatError{Reason: fmt.Sprintf("got %d rows, expected %d", len(rows), m.height)}
	}
	for y, row := range rows {
		if len(row) != m.width {
			return &MapFormatError{Line: y + 1, Reason: fmt.Sprintf("got %d columns, expected %d", len(row), m.width)}
		}
		for x, v := range row {
			if !Cell(v).Valid() {
				return &MapFormatError{Line: y + 1, Column: x + 1, Reason: fmt.Sprintf("unknown cell value %d", v)}
			}
		}
	}

	for y, row := range rows {
		for x, v := range row {
			m.cells[y][x] = Cell(v)
		}
	}
	return nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether c is a valid grid index.
func (m *Map) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Get returns the cell of the tile containing the continuous position (x, y).
func (m *Map) Get(x, y float64) (Cell, error) {
	return m.At(TileOf(x, y))
}

// At returns the cell at tile c.
func (m *Map) At(c Coord) (Cell, error) {
	if !m.InBounds(c) {
		return Empty, &OutOfBoundsError{At: c, Width: m.width, Height: m.height}
	}
	return m.cells[c.Y][c.X], nil
}

// Consume empties the tile containing (x, y): a wall is broken, food or an
// artifact is taken. Consuming an empty tile is a no-op.
func (m *Map) Consume(x, y float64) error {
	c := TileOf(x, y)
	if !m.InBounds(c) {
		return &OutOfBoundsError{At: c, Width: m.width, Height: m.height}
	}
	m.cells[c.Y][c.X] = Empty
	return nil
}

// Tiles yields every non-empty cell in row-major order. The sequence reads
// the live grid and can be ranged over any number of times.
func (m *Map) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for y, row := range m.cells {
			for x, cell := range row {
				if cell == Empty {
					continue
				}
				if !yield(Tile{Row: y, Col: x, Cell: cell}) {
					return
				}
			}
		}
	}
}

// Count returns how many tiles hold the given cell.
func (m *Map) Count(cell Cell) int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := New(m.width, m.height)
	for y := range m.cells {
		copy(c.cells[y], m.cells[y])
	}
	return c
}

// Equal reports whether two maps have the same size and contents.
func (m *Map) Equal(other *Map) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for y := range m.cells {
		for x := range m.cells[y] {
			if m.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the map in the text file format.
func (m *Map) String() string {
	var sb strings.Builder
	for y, row := range m.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(c)))
		}
	}
	return sb.String()
}
