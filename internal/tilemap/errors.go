package tilemap

import "fmt"

// MapFormatError reports malformed or mismatched map input.
// Line and Column are 1-based; zero means the whole map or whole row.
type MapFormatError struct {
	Line   int
	Column int
	Reason string
}

func (e *MapFormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("tilemap: invalid map at line %d, column %d: %s", e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("tilemap: invalid map at line %d: %s", e.Line, e.Reason)
	default:
		return fmt.Sprintf("tilemap: invalid map: %s", e.Reason)
	}
}

// OutOfBoundsError reports a lookup of a tile outside the grid.
// Movement clamps positions first, so seeing one means a caller skipped that.
type OutOfBoundsError struct {
	At            Coord
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tilemap: tile %s outside %dx%d grid", e.At, e.Width, e.Height)
}
