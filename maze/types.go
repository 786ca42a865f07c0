package maze

import (
	"errors"
	"math"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates a layout without a start marker.
	ErrNoStart = errors.New("maze: layout has no start position")
	// ErrMultipleStarts indicates a layout with more than one start marker.
	ErrMultipleStarts = errors.New("maze: layout has more than one start position")
	// ErrBadLayoutRune indicates a rune outside the layout alphabet.
	ErrBadLayoutRune = errors.New("maze: unknown layout character")
	// ErrStartIsWall indicates the start cell is a wall or out of bounds.
	ErrStartIsWall = errors.New("maze: start position is a wall")
	// ErrFoodIsWall indicates a food cell is a wall or out of bounds.
	ErrFoodIsWall = errors.New("maze: food position is a wall")
)

// Layout runes.
const (
	RuneWall    = '%'
	RuneStart   = 'P'
	RuneFood    = '.'
	RuneCapsule = 'o'
	RuneGhost   = 'G'
	RuneOpen    = ' '
)

// Position is a cell coordinate. It is comparable and usable as a map key.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Position) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
