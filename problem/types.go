package problem

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/maze"
)

// InfeasibleCost is returned by CostOfActions for sequences that hit a wall.
const InfeasibleCost = 999999

// Sentinel errors for problem construction.
var (
	// ErrNilLayout indicates a nil layout was supplied.
	ErrNilLayout = errors.New("problem: layout is nil")
	// ErrGoalIsWall indicates the goal cell is a wall or out of bounds.
	ErrGoalIsWall = errors.New("problem: goal position is a wall")
	// ErrStartIsWall indicates the start cell is a wall or out of bounds.
	ErrStartIsWall = errors.New("problem: start position is a wall")
	// ErrCornerIsWall indicates one of the inner corners is blocked.
	ErrCornerIsWall = errors.New("problem: corner position is a wall")
	// ErrUnknownAction indicates an action name that cannot be parsed.
	ErrUnknownAction = errors.New("problem: unknown action")
)

// Layout is the read-only board a problem is defined over. *maze.Maze
// implements it.
type Layout interface {
	Width() int
	Height() int
	IsWall(p maze.Position) bool
	HasFood(p maze.Position) bool
	Food() []maze.Position
	Start() maze.Position
}

// Action is a move on the board.
type Action uint8

const (
	// Stop stays in place.
	Stop Action = iota
	// North moves to Y+1.
	North
	// South moves to Y-1.
	South
	// East moves to X+1.
	East
	// West moves to X-1.
	West
)

// Directions lists the four moves in the order successors are generated.
var Directions = [4]Action{North, South, East, West}

var actionNames = [...]string{Stop: "Stop", North: "North", South: "South", East: "East", West: "West"}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Reverse returns the opposite move. Stop reverses to itself.
func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}

// Vector returns the (dx, dy) displacement of a.
func (a Action) Vector() (dx, dy int) {
	switch a {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseAction maps a case-insensitive action name to an Action.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if strings.EqualFold(s, name) {
			return Action(i), nil
		}
	}
	return Stop, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Successor is one outgoing (or, for backward enumeration, incoming) edge.
type Successor[S comparable] struct {
	State  S
	Action Action
	Cost   float64
}

// Problem is the contract every search problem implements.
type Problem[S comparable] interface {
	// StartState returns the initial state. No side effects.
	StartState() S
	// IsGoal reports whether s satisfies the goal test.
	IsGoal(s S) bool
	// Successors enumerates the legal moves out of s, each with a
	// non-negative step cost. It increments the expansion counter once.
	Successors(s S) []Successor[S]
	// CostOfActions returns the total cost of walking actions from the
	// start state, or InfeasibleCost if a step hits a wall.
	CostOfActions(actions []Action) float64
	// Expanded returns the number of successor enumerations so far.
	Expanded() int
}

// Bidirectional extends Problem with what backward search needs.
type Bidirectional[S comparable] interface {
	Problem[S]
	// GoalStates enumerates concrete terminal states to seed backward search.
	GoalStates() []S
	// BackwardSuccessors enumerates predecessors of s. Each entry carries
	// the forward action and cost of the edge predecessor→s.
	BackwardSuccessors(s S) []Successor[S]
}

// CostFunc prices entering a cell. It must be non-negative.
type CostFunc func(p maze.Position) float64

// UnitCost charges 1 per step.
func UnitCost(maze.Position) float64 { return 1 }

// StayEastCost charges 0.5^x, favouring the east side of the board.
func StayEastCost(p maze.Position) float64 { return pow(0.5, p.X) }

// StayWestCost charges 2^x, favouring the west side of the board.
func StayWestCost(p maze.Position) float64 { return pow(2, p.X) }

func pow(base float64, exp int) float64 {
	out := 1.0
	if exp < 0 {
		base, exp = 1/base, -exp
	}
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}

// step returns the cell reached from p by a and whether it is open.
func step(l Layout, p maze.Position, a Action) (maze.Position, bool) {
	dx, dy := a.Vector()
	next := p.Add(dx, dy)
	return next, !l.IsWall(next)
}
