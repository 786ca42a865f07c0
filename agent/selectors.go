package agent

import (
	"fmt"
	"strings"
)

// Algorithm selects the search routine an Agent plans with.
type Algorithm uint8

const (
	DFS           Algorithm = iota // graph-search depth-first
	BFS                            // graph-search breadth-first
	UCS                            // uniform-cost search
	AStar                          // A* with the forward heuristic
	EHC                            // enforced hill-climbing on the forward heuristic
	Bidirectional                  // bidirectional search with both heuristics

	// ClosestDotSearch eats pellets greedily with one BFS leg per pellet.
	// It ignores the problem and heuristic selectors.
	ClosestDotSearch
)

var algorithmNames = [...]string{
	DFS:              "dfs",
	BFS:              "bfs",
	UCS:              "ucs",
	AStar:            "astar",
	EHC:              "ehc",
	Bidirectional:    "bae",
	ClosestDotSearch: "closest_dot",
}

var algorithmAliases = map[string]Algorithm{
	"depthfirstsearch":           DFS,
	"breadthfirstsearch":         BFS,
	"uniformcostsearch":          UCS,
	"astarsearch":                AStar,
	"enforcedhillclimbing":       EHC,
	"bidirectionalastarenhanced": Bidirectional,
	"bidirectional":              Bidirectional,
	"closestdotsearch":           ClosestDotSearch,
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Informed reports whether a uses a forward heuristic.
func (a Algorithm) Informed() bool {
	return a == AStar || a == EHC || a == Bidirectional
}

// ParseAlgorithm accepts the short names (dfs, bfs, ucs, astar, ehc, bae,
// closest_dot) and the long function names, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range algorithmNames {
		if key == name {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrConfig, s)
}

// ProblemKind selects the search problem built from the board.
type ProblemKind uint8

const (
	Position ProblemKind = iota // reach Config.Goal
	AnyFood                     // reach any pellet
	Corners                     // visit the four inner corners
	Food                        // eat every pellet
)

var problemNames = [...]string{
	Position: "position",
	AnyFood:  "any_food",
	Corners:  "corners",
	Food:     "food",
}

var problemAliases = map[string]ProblemKind{
	"positionsearchproblem":              Position,
	"bidirectionalpositionsearchproblem": Position,
	"anyfoodsearchproblem":               AnyFood,
	"cornersproblem":                     Corners,
	"foodsearchproblem":                  Food,
	"bidirectionalfoodsearchproblem":     Food,
}

func (k ProblemKind) String() string {
	if int(k) < len(problemNames) {
		return problemNames[k]
	}
	return fmt.Sprintf("ProblemKind(%d)", uint8(k))
}

// cover reports whether k is a visit-every-goal problem.
func (k ProblemKind) cover() bool { return k == Corners || k == Food }

// ParseProblemKind accepts position, any_food, corners and food, plus the
// problem class names.
func ParseProblemKind(s string) (ProblemKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range problemNames {
		if key == name {
			return ProblemKind(i), nil
		}
	}
	if k, ok := problemAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown problem %q", ErrConfig, s)
}

// HeuristicKind selects a heuristic constructor from package heuristic.
type HeuristicKind uint8

const (
	// NullHeuristic is 0 everywhere and applies to every problem.
	NullHeuristic HeuristicKind = iota

	// Position and any-food problems.
	Manhattan         // heuristic.Manhattan
	Euclidean         // heuristic.Euclidean
	TrueDistance      // heuristic.TrueDistance, named "maze"
	BackwardManhattan // heuristic.BackwardManhattan

	// Corners and food problems.
	NearestGoal         // heuristic.NearestGoal
	NearestGoalMaze     // heuristic.NearestGoalMaze
	DistanceToStart     // heuristic.DistanceToStart
	DistanceToStartMaze // heuristic.DistanceToStartMaze
	FarthestGoal        // heuristic.FarthestGoal
	FarthestGoalMaze    // heuristic.FarthestGoalMaze
	SpanGoals           // heuristic.SpanGoals
	SpanGoalsMaze       // heuristic.SpanGoalsMaze
)

var heuristicNames = [...]string{
	NullHeuristic:       "null",
	Manhattan:           "manhattan",
	Euclidean:           "euclidean",
	TrueDistance:        "maze",
	BackwardManhattan:   "backward_manhattan",
	NearestGoal:         "nearest_goal",
	NearestGoalMaze:     "nearest_goal_maze",
	DistanceToStart:     "distance_to_start",
	DistanceToStartMaze: "distance_to_start_maze",
	FarthestGoal:        "farthest_goal",
	FarthestGoalMaze:    "farthest_goal_maze",
	SpanGoals:           "span_goals",
	SpanGoalsMaze:       "span_goals_maze",
}

var heuristicAliases = map[string]HeuristicKind{
	"nullheuristic":                              NullHeuristic,
	"manhattanheuristic":                         Manhattan,
	"euclideanheuristic":                         Euclidean,
	"backwardsmanhattanheuristic":                BackwardManhattan,
	"cornersheuristic":                           NearestGoal,
	"foodheuristic":                              NearestGoal,
	"bidirectionalfoodproblemheuristic":          NearestGoal,
	"bidirectionalfoodproblembackwardsheuristic": DistanceToStart,
	"calculatemaxdistance":                       FarthestGoal,
	"calculaterealmindistance":                   FarthestGoalMaze,
	"calculatepermutation":                       SpanGoals,
	"calculaterealpermutation":                   SpanGoalsMaze,
}

func (k HeuristicKind) String() string {
	if int(k) < len(heuristicNames) {
		return heuristicNames[k]
	}
	return fmt.Sprintf("HeuristicKind(%d)", uint8(k))
}

// appliesTo reports whether k is defined for problems of kind p. The null
// heuristic applies everywhere.
func (k HeuristicKind) appliesTo(p ProblemKind) bool {
	switch k {
	case NullHeuristic:
		return true
	case Manhattan, Euclidean, TrueDistance, BackwardManhattan:
		return !p.cover()
	default:
		return p.cover()
	}
}

// ParseHeuristicKind accepts the names listed in heuristicNames plus the
// heuristic function names.
func ParseHeuristicKind(s string) (HeuristicKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return NullHeuristic, nil
	}
	for i, name := range heuristicNames {
		if key == name {
			return HeuristicKind(i), nil
		}
	}
	if k, ok := heuristicAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown heuristic %q", ErrConfig, s)
}
