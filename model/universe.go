package model

import "math/rand/v2"

// Universe owns the current and next generation buffers plus the
// generation counter. Buffers are swapped after each step, never copied.
type Universe struct {
	cur        *Grid
	nxt        *Grid
	generation int
	workers    int
}

// NewUniverse wraps an initial grid as generation 1
func NewUniverse(g *Grid, workers int) *Universe {
	return &Universe{
		cur:        g,
		nxt:        NewGrid(g.width, g.height),
		generation: 1,
		workers:    max(1, workers),
	}
}

// RandomUniverse seeds a width x height universe with live probability p
func RandomUniverse(width, height int, p float64, seed uint64, workers int) (*Universe, error) {
	rng := rand.New(rand.NewPCG(seed, 0))
	g, err := Initialize(width, height, p, rng)
	if err != nil {
		return nil, err
	}
	return NewUniverse(g, workers), nil
}

// Grid returns the current generation. The returned grid is overwritten
// by the step after next, so callers must not hold on to it.
func (u *Universe) Grid() *Grid { return u.cur }

// Generation returns the current generation number, starting at 1
func (u *Universe) Generation() int { return u.generation }

// Step advances the universe by one generation
func (u *Universe) Step() {
	AdvanceParallel(u.cur, u.nxt, u.workers)
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}
