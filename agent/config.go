package agent

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
)

// ErrConfig is returned for any invalid agent configuration.
var ErrConfig = errors.New("agent: invalid configuration")

// Cost presets accepted by Config.Cost.
const (
	CostUnit     = "unit"
	CostStayEast = "stay_east"
	CostStayWest = "stay_west"
)

// Config names the algorithm, problem and heuristics an Agent plans with.
// Steps under the stay_east preset cost less than one move, so distance
// heuristics overestimate there; astar and bae accept only the null
// heuristic with it.
//
//	algorithm: bae
//	problem: position
//	heuristic: manhattan
//	backward_heuristic: backward_manhattan
//	goal: {x: 1, y: 1}
//	cost: unit
//	max_expansions: 100000
type Config struct {
	Algorithm         string        `yaml:"algorithm" validate:"required,algorithm"`
	Problem           string        `yaml:"problem" validate:"required,problem"`
	Heuristic         string        `yaml:"heuristic" validate:"omitempty,heuristic"`
	BackwardHeuristic string        `yaml:"backward_heuristic" validate:"omitempty,heuristic"`
	Goal              maze.Position `yaml:"goal"`
	Cost              string        `yaml:"cost" validate:"omitempty,oneof=unit stay_east stay_west"`
	MaxExpansions     int           `yaml:"max_expansions" validate:"gte=0"`
	ClosedMeeting     bool          `yaml:"closed_meeting"`
}

// DefaultConfig plans with depth-first search towards (1,1).
func DefaultConfig() Config {
	return Config{
		Algorithm: DFS.String(),
		Problem:   Position.String(),
		Heuristic: NullHeuristic.String(),
		Goal:      maze.Position{X: 1, Y: 1},
		Cost:      CostUnit,
	}
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	_ = configValidate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	_ = configValidate.RegisterValidation("problem", func(fl validator.FieldLevel) bool {
		_, err := ParseProblemKind(fl.Field().String())
		return err == nil
	})
	_ = configValidate.RegisterValidation("heuristic", func(fl validator.FieldLevel) bool {
		_, err := ParseHeuristicKind(fl.Field().String())
		return err == nil
	})
}

// Validate checks field syntax and that the heuristics suit the problem.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	_, err := c.resolve()
	return err
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("agent: read config: %w", err)
	}
	return ParseConfig(data)
}

// selection is a Config resolved into typed selectors.
type selection struct {
	algorithm Algorithm
	problem   ProblemKind
	forward   HeuristicKind
	backward  HeuristicKind
	cost      problem.CostFunc
}

func (c Config) resolve() (selection, error) {
	var (
		sel selection
		err error
	)
	if sel.algorithm, err = ParseAlgorithm(c.Algorithm); err != nil {
		return sel, err
	}
	if sel.problem, err = ParseProblemKind(c.Problem); err != nil {
		return sel, err
	}
	if sel.forward, err = ParseHeuristicKind(c.Heuristic); err != nil {
		return sel, err
	}
	if sel.backward, err = ParseHeuristicKind(c.BackwardHeuristic); err != nil {
		return sel, err
	}
	for _, k := range []HeuristicKind{sel.forward, sel.backward} {
		if !k.appliesTo(sel.problem) {
			return sel, fmt.Errorf("%w: heuristic %s does not apply to %s problems", ErrConfig, k, sel.problem)
		}
	}
	switch c.Cost {
	case "", CostUnit:
		sel.cost = problem.UnitCost
	case CostStayEast:
		sel.cost = problem.StayEastCost
	case CostStayWest:
		sel.cost = problem.StayWestCost
	default:
		return sel, fmt.Errorf("%w: unknown cost %q", ErrConfig, c.Cost)
	}
	if sel.problem.cover() && c.Cost != "" && c.Cost != CostUnit {
		return sel, fmt.Errorf("%w: cost %s needs a position problem", ErrConfig, c.Cost)
	}
	if c.Cost == CostStayEast && (sel.algorithm == AStar || sel.algorithm == Bidirectional) {
		for _, k := range []HeuristicKind{sel.forward, sel.backward} {
			if k != NullHeuristic {
				return sel, fmt.Errorf("%w: heuristic %s overestimates under cost %s", ErrConfig, k, c.Cost)
			}
		}
	}

	return sel, nil
}
