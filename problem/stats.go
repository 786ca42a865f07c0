package problem

import "github.com/katalvlaran/lvsearch/maze"

// expansions is the diagnostic bookkeeping shared by all variants.
type expansions[S comparable] struct {
	count int
	seen  map[S]struct{}
	order []S
}

func (e *expansions[S]) record(s S) {
	e.count++
	if e.seen == nil {
		e.seen = make(map[S]struct{})
	}
	if _, ok := e.seen[s]; !ok {
		e.seen[s] = struct{}{}
		e.order = append(e.order, s)
	}
}

// Expanded returns the number of successor enumerations performed.
func (e *expansions[S]) Expanded() int { return e.count }

// ExpandedStates returns distinct expanded states in first-expansion order.
func (e *expansions[S]) ExpandedStates() []S {
	out := make([]S, len(e.order))
	copy(out, e.order)
	return out
}

// DistanceCache memoizes symmetric cell-to-cell distances. Each key is
// written at most once; later Put calls for a known key are ignored.
// Not safe for concurrent use.
type DistanceCache struct {
	m map[[2]maze.Position]float64
}

// NewDistanceCache returns an empty cache.
func NewDistanceCache() *DistanceCache {
	return &DistanceCache{m: make(map[[2]maze.Position]float64)}
}

// Get returns the cached distance between a and b.
func (c *DistanceCache) Get(a, b maze.Position) (float64, bool) {
	d, ok := c.m[cacheKey(a, b)]
	return d, ok
}

// Put stores d for (a, b) unless a value is already present.
func (c *DistanceCache) Put(a, b maze.Position, d float64) {
	k := cacheKey(a, b)
	if _, ok := c.m[k]; !ok {
		c.m[k] = d
	}
}

// Len returns the number of cached pairs.
func (c *DistanceCache) Len() int { return len(c.m) }

func cacheKey(a, b maze.Position) [2]maze.Position {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return [2]maze.Position{a, b}
}
