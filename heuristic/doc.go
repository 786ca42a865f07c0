// Package heuristic supplies the cost estimates that guide AStar,
// EnforcedHillClimbing and Bidirectional in package search.
//
// Every constructor binds a heuristic to its problem and returns a
// search.Heuristic, a pure function from state to a non-negative estimate.
// Nothing here mutates a problem except the per-problem DistanceCache,
// which is filled at most once per cell pair.
//
// Position problems (S = maze.Position):
//
//   - Manhattan:         |dx|+|dy| to the nearest goal cell.
//   - Euclidean:         straight-line distance to the nearest goal cell.
//   - TrueDistance:      exact maze distance to the nearest goal cell.
//   - BackwardManhattan: |dx|+|dy| back to the start (backward side).
//
// Cover problems (S = problem.CoverState, corners and food):
//
//   - NearestGoal:         Manhattan distance to the nearest unvisited goal.
//   - NearestGoalMaze:     maze distance to the nearest unvisited goal.
//   - DistanceToStart:     Manhattan distance back to the start (backward side).
//   - DistanceToStartMaze: maze distance back to the start.
//   - FarthestGoal:        Manhattan distance to the farthest unvisited goal.
//   - FarthestGoalMaze:    maze distance to the farthest unvisited goal.
//   - SpanGoals:           nearest goal plus the widest Manhattan goal pair.
//   - SpanGoalsMaze:       SpanGoals over maze distances.
//
// Admissibility:
//
//	All of the above are admissible for unit step costs. With cheaper steps
//	(problem.StayEastCost) only Null stays admissible.
//
//	FarthestGoal and SpanGoals dominate NearestGoal: every remaining goal,
//	both ends of the widest pair included, still has to be reached.
//
//	NearestGoal lower-bounds the cost of reaching one more goal, so it is
//	admissible for "visit all", but not consistent in general when goal
//	sets change along an edge. A* tolerates this through re-expansion;
//	Bidirectional's stopping bound assumes consistency.
//
// TrueDistance and the "Maze" variants run a nested breadth-first search per
// uncached pair, trading time for a tighter bound.
package heuristic
