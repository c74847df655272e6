package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid represents the game board as a flat, row-major cell buffer
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Initialize creates a width x height grid where each cell is alive when an
// independent uniform draw in [0,1) is at most p
func Initialize(width, height int, p float64, rng *rand.Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[Initialize] invalid grid dimensions %dx%d", width, height)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, errors.Errorf("[Initialize] live probability %v outside [0,1]", p)
	}

	g := NewGrid(width, height)
	for i := range g.cells {
		g.cells[i] = rng.Float64() <= p
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y*g.width+x] = alive
	}
}

// Get returns the state of a cell; anything outside the board is dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x]
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y).
// The board does not wrap: corners see at most 3 neighbors, edges at most 5.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.width : (ny+1)*g.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// sameSize reports whether both grids share dimensions
func (g *Grid) sameSize(o *Grid) bool {
	return g.width == o.width && g.height == o.height
}
