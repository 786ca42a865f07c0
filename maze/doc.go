// Package maze models the static Pacman board that search problems run on:
// a rectangular wall grid, the agent start cell, food pellets and capsules.
//
// What:
//
//   - Maze wraps a W×H wall grid addressed by Position{X, Y}, with (0,0) at
//     the bottom-left corner and Y growing upwards (Pacman orientation).
//   - IsWall is O(1) and treats every out-of-bounds cell as a wall, so
//     callers can probe neighbours without bounds checks.
//   - Parse reads the classic ASCII layout format; String writes it back.
//
// Why:
//
//   - Search problems need only wall occupancy and four-directional
//     adjacency; everything else about the game is out of scope.
//   - A Maze is immutable once built, so problems may share one safely.
//
// Layout format:
//
//	%  wall          P  agent start (exactly one)
//	.  food pellet   o  capsule (open cell)
//	G  ghost (open)  1-4 ghost spawn (open)
//	   (space) open cell
//
// The first text line is the top row (Y = Height-1).
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - IsWall, InBounds, HasFood: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart, ErrMultipleStarts: layout start marker missing or repeated.
//   - ErrBadLayoutRune: a rune outside the layout alphabet.
//   - ErrStartIsWall, ErrFoodIsWall: a start or food cell placed on a wall.
package maze
