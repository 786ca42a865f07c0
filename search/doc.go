// Package search implements generic state-space search over any
// problem.Problem: depth-first, breadth-first, uniform-cost, A*, enforced
// hill-climbing and bidirectional heuristic search.
//
// Overview:
//
//   - Every algorithm is a plain generic function over a comparable state
//     type S. Problems supply StartState, IsGoal and Successors; planners
//     return a *Plan holding the actions, their accumulated cost and the
//     number of nodes expanded by the call.
//   - Search nodes are immutable and point to their parent; a plan is
//     rebuilt by walking the parent chain of the goal node.
//   - All frontiers use graph-search: a state is expanded at most once,
//     except in AStar, which re-opens a state reached strictly cheaper.
//   - Bidirectional requires a problem.Bidirectional (GoalStates and
//     BackwardSuccessors) and two heuristics, one per direction.
//
// When to use:
//
//   - DFS: cheapest memory, any plan will do.
//   - BFS: fewest actions, uniform step costs.
//   - UCS: cheapest plan, arbitrary non-negative step costs.
//   - AStar: cheapest plan with an admissible heuristic, fewer expansions.
//   - EnforcedHillClimbing: fast, greedy, not optimal; needs a heuristic
//     that strictly decreases towards the goal.
//   - Bidirectional: optimal with consistent heuristics, searches from both
//     ends and meets in the middle.
//
// Options:
//
//   - WithContext(ctx):       cancellation, checked once per expansion.
//   - WithMaxExpansions(n):   abort with ErrBudgetExceeded after n expansions.
//   - WithOnExpand(fn):       hook called before each expansion.
//   - WithLogger(l):          logrus logger for per-search debug entries.
//   - WithClosedMeeting():    Bidirectional also meets against closed states.
//
// Errors:
//
//   - ErrNilProblem:      nil problem passed.
//   - ErrOptionViolation: an Option was given an invalid value.
//   - ErrNoSolution:      frontier exhausted without reaching a goal.
//   - ErrBudgetExceeded:  MaxExpansions reached.
//   - ErrNoImprovement:   EnforcedHillClimbing stuck on a plateau.
//   - ctx.Err():          search cancelled via context.
//
// Complexity (b = branching factor, d = solution depth, N = reachable states):
//
//   - DFS, BFS:  O(N) time and memory.
//   - UCS, A*:   O(N log N) time with a lazy decrease-key heap.
//   - EHC:       O(N) per improvement step in the worst case.
//   - Bidirectional: O(N log N); in practice about b^(d/2) per side.
//
// A zero-length plan (start already a goal) is a success with an empty,
// non-nil Actions slice, and is distinct from ErrNoSolution.
package search
