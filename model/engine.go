package model

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gof/rules"
)

// Advance writes the generation following src into dst. Only src is read,
// so no cell is ever computed from an already-updated neighbor. dst must
// have the same dimensions as src and must not be src.
func Advance(src, dst *Grid) {
	if !src.sameSize(dst) {
		panic(fmt.Sprintf("model: advance into %dx%d grid from %dx%d", dst.width, dst.height, src.width, src.height))
	}
	advanceRows(src, dst, 0, src.height)
}

// AdvanceParallel computes the same result as Advance, splitting rows into
// bands across workers. Each band writes only its own rows of dst.
func AdvanceParallel(src, dst *Grid, workers int) {
	if workers <= 1 || src.height < 2 {
		Advance(src, dst)
		return
	}
	if !src.sameSize(dst) {
		panic(fmt.Sprintf("model: advance into %dx%d grid from %dx%d", dst.width, dst.height, src.width, src.height))
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (src.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.height)
		)
		if startRow >= src.height {
			break
		}

		eg.Go(func() error {
			advanceRows(src, dst, startRow, endRow)
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()
}

// Next returns a freshly allocated grid holding the generation after g
func Next(g *Grid) *Grid {
	next := NewGrid(g.width, g.height)
	Advance(g, next)
	return next
}

func advanceRows(src, dst *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < src.width; x++ {
			idx := y*src.width + x
			dst.cells[idx] = rules.ApplyConwayRules(src.CountNeighbors(x, y), src.cells[idx])
		}
	}
}
