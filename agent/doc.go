// Package agent turns a configuration naming an algorithm, a problem and
// its heuristics into a plan for one board, and replays that plan one
// action at a time.
//
// An Agent plans exactly once per Register call; Next then hands out the
// actions in order and returns problem.Stop when the plan is spent.
// Configurations are plain YAML decoded with gopkg.in/yaml.v3 and checked
// with go-playground/validator before any search runs:
//
//	cfg, err := agent.ParseConfig([]byte("algorithm: astar\nproblem: food\nheuristic: nearest_goal\n"))
//	a, err := agent.New(cfg, agent.WithLogger(log))
//	err = a.Register(board)
//	for act := a.Next(); act != problem.Stop; act = a.Next() { ... }
//
// Selector names: algorithms dfs, bfs, ucs, astar, ehc, bae (bidirectional)
// and closest_dot; problems position, any_food, corners and food. The long
// function and class names of the classic Pacman project are accepted too.
//
// Metrics are opt-in: NewMetrics registers counters and histograms on a
// caller-supplied prometheus.Registerer and WithMetrics attaches them.
package agent
