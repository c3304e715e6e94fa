package tilemap

import (
	"errors"
	"strings"
	"testing"
)

func mustRows(t *testing.T, rows [][]int) *Map {
	t.Helper()
	m, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return m
}

func TestParse(t *testing.T) {
	input := "1 1 1\n1 0 3\n1 4 5\n\n"

	m, err := Parse(strings.NewReader(input), 3, 3)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	tests := []struct {
		x, y float64
		want Cell
	}{
		{0, 0, UnbreakableWall},
		{1.0, 1.0, Empty},
		{2.9, 1.2, Food},
		{1.5, 2.5, ArtifactExtraPoints},
		{2, 2, ArtifactSurvival},
	}
	for _, tc := range tests {
		got, err := m.Get(tc.x, tc.y)
		if err != nil {
			t.Fatalf("Get(%v, %v) failed: %v", tc.x, tc.y, err)
		}
		if got != tc.want {
			t.Errorf("Get(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"too few rows", "0 0\n0 0\n", 0},
		{"too many rows", "0 0\n0 0\n0 0\n0 0\n", 0},
		{"short row", "0 0\n0\n0 0\n", 2},
		{"long row", "0 0\n0 0 0\n0 0\n", 2},
		{"unknown value", "0 0\n0 6\n0 0\n", 2},
		{"negative value", "-1 0\n0 0\n0 0\n", 1},
		{"not a number", "0 0\n0 0\nx 0\n", 3},
		{"blank line inside", "0 0\n\n0 0\n", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), 2, 3)
			var formatErr *MapFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Parse() error = %v, expected MapFormatError", err)
			}
			if formatErr.Line != tc.line {
				t.Errorf("error line = %d, expected %d (%v)", formatErr.Line, tc.line, err)
			}
		})
	}
}

func TestLoadLeavesMapOnError(t *testing.T) {
	m := mustRows(t, [][]int{{3, 3}, {3, 3}})
	before := m.Clone()

	err := m.Load([][]int{{0, 0}, {0, 9}})
	if err == nil {
		t.Fatal("Load() with invalid value should fail")
	}
	if !m.Equal(before) {
		t.Error("failed Load must not modify the grid")
	}
}

func TestGetOutOfBounds(t *testing.T) {
	m := New(4, 3)

	for _, pos := range [][2]float64{{-0.1, 0}, {0, -0.5}, {4, 0}, {0, 3}, {3.99, 2.99}} {
		_, err := m.Get(pos[0], pos[1])
		inside := pos[0] >= 0 && pos[0] < 4 && pos[1] >= 0 && pos[1] < 3
		var oob *OutOfBoundsError
		if inside && err != nil {
			t.Errorf("Get(%v, %v) unexpected error %v", pos[0], pos[1], err)
		}
		if !inside && !errors.As(err, &oob) {
			t.Errorf("Get(%v, %v) error = %v, expected OutOfBoundsError", pos[0], pos[1], err)
		}
	}
}

func TestConsumeIdempotent(t *testing.T) {
	m := mustRows(t, [][]int{
		{1, 1, 1},
		{1, 3, 2},
		{1, 0, 4},
	})

	once := m.Clone()
	if err := once.Consume(1.5, 1.5); err != nil {
		t.Fatalf("Consume() failed: %v", err)
	}
	if err := once.Consume(1.5, 2.2); err != nil {
		t.Fatalf("Consume() on empty cell failed: %v", err)
	}

	twice := once.Clone()
	if err := twice.Consume(1.5, 1.5); err != nil {
		t.Fatalf("second Consume() failed: %v", err)
	}
	if err := twice.Consume(1.5, 2.2); err != nil {
		t.Fatalf("second Consume() failed: %v", err)
	}

	if !once.Equal(twice) {
		t.Errorf("consuming twice differs from once:\n%s\nvs\n%s", once, twice)
	}
	if c, _ := once.Get(1, 1); c != Empty {
		t.Errorf("consumed food should be empty, got %v", c)
	}
	if c, _ := once.Get(2, 1); c != BreakableWall {
		t.Errorf("untouched tile changed to %v", c)
	}

	var oob *OutOfBoundsError
	if err := m.Consume(5, 5); !errors.As(err, &oob) {
		t.Errorf("Consume() outside grid error = %v, expected OutOfBoundsError", err)
	}
}

func TestTiles(t *testing.T) {
	m := mustRows(t, [][]int{
		{1, 0, 3},
		{0, 0, 0},
		{2, 5, 0},
	})

	var got []Tile
	for tile := range m.Tiles() {
		got = append(got, tile)
	}

	want := []Tile{
		{Row: 0, Col: 0, Cell: UnbreakableWall},
		{Row: 0, Col: 2, Cell: Food},
		{Row: 2, Col: 0, Cell: BreakableWall},
		{Row: 2, Col: 1, Cell: ArtifactSurvival},
	}
	if len(got) != len(want) {
		t.Fatalf("Tiles() yielded %d tiles, expected %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tile %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	// Restartable and reflects mutation
	_ = m.Consume(2, 0)
	n := 0
	for range m.Tiles() {
		n++
	}
	if n != 3 {
		t.Errorf("second pass yielded %d tiles, expected 3", n)
	}

	// Early break must stop the sequence
	n = 0
	for range m.Tiles() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("break after first tile yielded %d", n)
	}
}

func TestCountAndString(t *testing.T) {
	m := mustRows(t, [][]int{
		{3, 3, 1},
		{0, 3, 4},
	})

	if got := m.Count(Food); got != 3 {
		t.Errorf("Count(Food) = %d, expected 3", got)
	}
	if got := m.String(); got != "3 3 1\n0 3 4" {
		t.Errorf("String() = %q", got)
	}

	back, err := Parse(strings.NewReader(m.String()), 3, 2)
	if err != nil {
		t.Fatalf("Parse(String()) failed: %v", err)
	}
	if !back.Equal(m) {
		t.Error("String() output should parse back to the same map")
	}
}

func TestCellPredicates(t *testing.T) {
	tests := []struct {
		cell        Cell
		wall        bool
		traversable bool
	}{
		{Empty, false, true},
		{UnbreakableWall, true, false},
		{BreakableWall, true, true},
		{Food, false, true},
		{ArtifactExtraPoints, false, true},
		{ArtifactSurvival, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.cell.String(), func(t *testing.T) {
			if tc.cell.IsWall() != tc.wall {
				t.Errorf("IsWall() = %v, expected %v", tc.cell.IsWall(), tc.wall)
			}
			if tc.cell.Traversable() != tc.traversable {
				t.Errorf("Traversable() = %v, expected %v", tc.cell.Traversable(), tc.traversable)
			}
		})
	}
	if Cell(6).Valid() || Cell(-1).Valid() {
		t.Error("values outside 0..5 must be invalid")
	}
}
