package i

import (
	"context"

	"github.com/beka-birhanu/labyrinth/maze"
	"github.com/beka-birhanu/labyrinth/solver"
)

// Solver computes the least number of turns through a grid.
type Solver interface {
	Solve(ctx context.Context, g *maze.Grid) (int, solver.Stats, error)
}
