// Package problem defines the search-problem contract consumed by package
// search and the Pacman problem variants built on a maze.
//
// What
//
//   - Problem[S]: start state, goal test, successor enumeration and
//     action-sequence costing over a comparable state type S.
//   - Bidirectional[S]: the optional extension needed by bidirectional
//     search, adding an explicit goal-state set and backward successors.
//   - Variants:
//   - PositionSearch: reach one fixed cell (S = maze.Position).
//   - AnyFoodSearch:  reach any cell that holds food (S = maze.Position).
//   - CornersSearch:  visit the four inner corners in any order (S = CoverState).
//   - FoodSearch:     eat every food pellet in any order (S = CoverState).
//
// State discipline
//
//	States are plain comparable values. CoverState pairs a position with an
//	immutable GoalSet bitset, so two states that visited the same goals are
//	equal regardless of visiting order, and successors never alias each other.
//
// Backward successors
//
//	BackwardSuccessors(B) enumerates every state A with a forward edge A→B.
//	Each returned Successor carries the forward action of that edge (the one
//	that moves A onto B) and the forward edge cost, so a backward chain read
//	from the meeting point towards a goal is already a forward plan.
//
// Costs
//
//	CostOfActions never fails: a sequence that walks into a wall costs
//	InfeasibleCost. Stop is a zero-cost no-op.
//
// Diagnostics
//
//	Every call to Successors or BackwardSuccessors increments Expanded()
//	exactly once and appends the state to ExpandedStates() on first sight.
//	Cache() exposes a write-once distance memo that heuristics may fill.
package problem
