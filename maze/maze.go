package maze

import (
	"fmt"
	"sort"
	"strings"
)

// Maze is an immutable wall grid with a start cell, food and capsules.
// Cells are stored row-major: index(x, y) = y*Width + x.
type Maze struct {
	width, height int
	walls         []bool
	food          []bool
	capsules      []Position
	start         Position
}

// New constructs a Maze from a non-empty, rectangular grid where walls[y][x]
// reports whether cell (x, y) is blocked; row 0 is the bottom row.
// The grid and food slice are deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrStartIsWall or ErrFoodIsWall.
// Complexity: O(W×H) time and memory.
func New(walls [][]bool, start Position, food []Position) (*Maze, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m := &Maze{
		width:  w,
		height: h,
		walls:  make([]bool, w*h),
		food:   make([]bool, w*h),
		start:  start,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.walls[m.index(x, y)] = walls[y][x]
		}
	}
	if m.IsWall(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}
	for _, f := range food {
		if m.IsWall(f) {
			return nil, fmt.Errorf("%w: %v", ErrFoodIsWall, f)
		}
		m.food[m.index(f.X, f.Y)] = true
	}

	return m, nil
}

// Open builds a w×h maze whose border cells are walls and whose interior is
// open. Handy for tests and synthetic boards.
func Open(w, h int, start Position, food ...Position) (*Maze, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	walls := make([][]bool, h)
	for y := range walls {
		walls[y] = make([]bool, w)
		for x := range walls[y] {
			walls[y][x] = x == 0 || y == 0 || x == w-1 || y == h-1
		}
	}
	return New(walls, start, food)
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the agent start cell.
func (m *Maze) Start() Position { return m.start }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsWall reports whether p is blocked. Out-of-bounds cells are walls.
// Complexity: O(1).
func (m *Maze) IsWall(p Position) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.walls[m.index(p.X, p.Y)]
}

// HasFood reports whether p holds a food pellet.
func (m *Maze) HasFood(p Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.food[m.index(p.X, p.Y)]
}

// Food returns the food cells ordered by X, then Y.
func (m *Maze) Food() []Position {
	out := make([]Position, 0)
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if m.food[m.index(x, y)] {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// FoodCount returns the number of food pellets.
func (m *Maze) FoodCount() int {
	n := 0
	for _, f := range m.food {
		if f {
			n++
		}
	}
	return n
}

// Capsules returns the capsule cells ordered by X, then Y.
func (m *Maze) Capsules() []Position {
	out := make([]Position, len(m.capsules))
	copy(out, m.capsules)
	return out
}

// WithStart returns a copy of m with a different start cell.
func (m *Maze) WithStart(p Position) (*Maze, error) {
	if m.IsWall(p) {
		return nil, fmt.Errorf("%w: %v", ErrStartIsWall, p)
	}
	c := m.clone()
	c.start = p
	return c, nil
}

// WithFood returns a copy of m whose food is exactly the given cells.
func (m *Maze) WithFood(food ...Position) (*Maze, error) {
	c := m.clone()
	for i := range c.food {
		c.food[i] = false
	}
	for _, f := range food {
		if c.IsWall(f) {
			return nil, fmt.Errorf("%w: %v", ErrFoodIsWall, f)
		}
		c.food[c.index(f.X, f.Y)] = true
	}
	return c, nil
}

// String renders m in the layout format, top row first.
func (m *Maze) String() string {
	caps := make(map[Position]bool, len(m.capsules))
	for _, c := range m.capsules {
		caps[c] = true
	}
	var sb strings.Builder
	for y := m.height - 1; y >= 0; y-- {
		for x := 0; x < m.width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case m.IsWall(p):
				sb.WriteRune(RuneWall)
			case p == m.start:
				sb.WriteRune(RuneStart)
			case m.HasFood(p):
				sb.WriteRune(RuneFood)
			case caps[p]:
				sb.WriteRune(RuneCapsule)
			default:
				sb.WriteRune(RuneOpen)
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (m *Maze) clone() *Maze {
	c := &Maze{
		width:    m.width,
		height:   m.height,
		walls:    make([]bool, len(m.walls)),
		food:     make([]bool, len(m.food)),
		capsules: make([]Position, len(m.capsules)),
		start:    m.start,
	}
	copy(c.walls, m.walls)
	copy(c.food, m.food)
	copy(c.capsules, m.capsules)
	return c
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Maze) index(x, y int) int {
	return y*m.width + x
}

// sortPositions orders positions by X, then Y.
func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
}
