package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Maze from the ASCII layout format described in the package
// documentation. Trailing blank lines and '\r' are ignored.
func Parse(text string) (*Maze, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader reads a layout from r. See Parse.
func ParseReader(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading layout: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(lines), len([]rune(lines[0]))
	walls := make([][]bool, h)
	var (
		food     []Position
		capsules []Position
		start    Position
		starts   int
	)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(runes), w)
		}
		y := h - 1 - row
		walls[y] = make([]bool, w)
		for x, ch := range runes {
			p := Position{X: x, Y: y}
			switch ch {
			case RuneWall:
				walls[y][x] = true
			case RuneStart:
				start = p
				starts++
			case RuneFood:
				food = append(food, p)
			case RuneCapsule:
				capsules = append(capsules, p)
			case RuneGhost, RuneOpen, '1', '2', '3', '4':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadLayoutRune, ch, x, y)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	m, err := New(walls, start, food)
	if err != nil {
		return nil, err
	}
	sortPositions(capsules)
	m.capsules = capsules

	return m, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string) *Maze {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}
