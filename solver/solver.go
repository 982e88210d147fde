// Package solver finds the least number of turns needed to walk a maze from
// its entry to its exit.
//
// The search is a recursive depth-first walk with backtracking. Every call
// receives its own copy of the search State, so sibling branches never see
// each other's turn counts, and the best result found so far is threaded
// back through return values. Branches whose turn count already reaches the
// best known result are cut off.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/labyrinth/maze"
)

var (
	ErrNoPath      = errors.New("no way out found")
	ErrSearchLimit = errors.New("search node limit exceeded")
)

// InitialDirection is the heading assumed before the first step. The entry is
// on the left edge, so the first move is expected to go right.
const InitialDirection = maze.Right

// State is the per-call search state. It is passed by value.
type State struct {
	Turns     int            // Turns taken so far on the current branch
	Best      int            // Best known result, valid only when Found is set
	Found     bool           // Found reports whether Best holds a result
	Direction maze.Direction // Direction of the last step
}

// InitialState returns the state the search starts from.
func InitialState() State {
	return State{Direction: InitialDirection}
}

// Stats captures the cost of a single solve.
type Stats struct {
	Nodes    int           // Number of search calls made
	Duration time.Duration // Wall-clock time spent searching
}

// Options tunes a Solver.
type Options struct {
	// MaxNodes caps the number of search calls. Zero means no limit.
	MaxNodes int
}

// Solver runs turn-minimising searches.
type Solver struct {
	opts Options
}

// New creates a Solver with the given options.
func New(opts Options) *Solver {
	if opts.MaxNodes < 0 {
		opts.MaxNodes = 0
	}
	return &Solver{opts: opts}
}

// Solve returns the least number of turns from maze.Start to the exit of g.
// The grid's visited flags are left cleared whatever the outcome.
func (s *Solver) Solve(ctx context.Context, g *maze.Grid) (int, Stats, error) {
	start := time.Now()
	run := &search{ctx: ctx, grid: g, maxNodes: s.opts.MaxNodes, prune: true}

	if !g.InBounds(maze.Start) {
		return 0, Stats{Duration: time.Since(start)}, ErrNoPath
	}

	turns, found, err := run.walk(maze.Start, InitialState())
	stats := Stats{Nodes: run.nodes, Duration: time.Since(start)}
	if err != nil {
		return 0, stats, err
	}
	if !found {
		return 0, stats, ErrNoPath
	}
	return turns, stats, nil
}

// Solve runs an unlimited search on g.
func Solve(g *maze.Grid) (int, error) {
	turns, _, err := New(Options{}).Solve(context.Background(), g)
	return turns, err
}

// Search runs the search primitive from an arbitrary position and state.
// It returns the best result reachable from there, folded with state.Best.
func Search(g *maze.Grid, at maze.Coordinate, state State) (int, bool, error) {
	run := &search{ctx: context.Background(), grid: g, prune: true}
	return run.walk(at, state)
}

// Exhaustive explores every simple path from maze.Start without cutting
// branches off. It is exponentially slower than Solve and exists to check it.
func Exhaustive(g *maze.Grid) (int, error) {
	if !g.InBounds(maze.Start) {
		return 0, ErrNoPath
	}

	run := &search{ctx: context.Background(), grid: g}
	turns, found, err := run.walk(maze.Start, InitialState())
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNoPath
	}
	return turns, nil
}

// search carries what one solve shares across recursive calls.
type search struct {
	ctx      context.Context
	grid     *maze.Grid
	maxNodes int
	nodes    int
	prune    bool
}

func (s *search) walk(at maze.Coordinate, state State) (int, bool, error) {
	s.nodes++
	if s.maxNodes > 0 && s.nodes > s.maxNodes {
		return 0, false, ErrSearchLimit
	}
	if err := s.ctx.Err(); err != nil {
		return 0, false, err
	}

	if s.prune && state.Found && state.Turns >= state.Best {
		return state.Best, true, nil
	}
	if s.grid.IsExit(at) {
		return state.Turns, true, nil
	}

	s.grid.MarkVisited(at, true)
	defer s.grid.MarkVisited(at, false)

	best, found := state.Best, state.Found
	for _, next := range s.grid.Neighbours(at) {
		dir, err := at.DirectionTo(next)
		if err != nil {
			return 0, false, fmt.Errorf("neighbour of %s: %w", at, err)
		}

		turns := state.Turns
		if dir != state.Direction {
			turns++
		}

		result, ok, err := s.walk(next, State{
			Turns:     turns,
			Best:      best,
			Found:     found,
			Direction: dir,
		})
		if err != nil {
			return 0, false, err
		}
		if ok && (!found || result < best) {
			best, found = result, true
		}
	}

	return best, found, nil
}
