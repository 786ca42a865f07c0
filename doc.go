// Package lvsearch is your toolbox for planning on grid mazes, from the
// classic uninformed searches to A* and bidirectional heuristic search.
//
// 🚀 What is lvsearch?
//
//	A generic, allocation-conscious state-space search library that brings together:
//		• Boards: Pacman-style ASCII layouts with walls, food and a start cell
//		• Problems: reach a cell, reach any food, tour the corners, eat all food
//		• Uninformed search: DFS, BFS, uniform-cost search
//		• Informed search: A*, enforced hill-climbing
//		• Bidirectional search with a provable stopping bound
//		• Heuristics: Manhattan, Euclidean and exact maze distance
//
// ✨ Why choose lvsearch?
//
//   - Generic: any comparable state type, any problem satisfying problem.Problem
//   - Explicit results: a Plan on success, a sentinel error on failure
//   - Tunable: budgets, cancellation, hooks and logrus logging via options
//   - Config-driven agent: YAML configs, validated before any search runs
//
// Under the hood, everything is organized under five subpackages:
//
//	maze/       board type and layout parser
//	problem/    Action, Problem and Bidirectional interfaces, problem variants
//	search/     DFS, BFS, UCS, AStar, EnforcedHillClimbing, Bidirectional
//	heuristic/  heuristics bound to problems, exact maze distance
//	agent/      config, plan-once/replay agent, closest-dot agent, metrics
//
// Quick ASCII example:
//
//	%%%%%%%
//	%P    %
//	%%%%%%%
//
//	is a corridor; every algorithm plans East ×4 from P to the far end.
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
