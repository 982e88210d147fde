package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/beka-birhanu/labyrinth/maze"
	"github.com/beka-birhanu/labyrinth/service/i"
	"github.com/beka-birhanu/labyrinth/solver"
	"github.com/google/uuid"
)

var (
	ErrInvalidMaze     = errors.New("invalid maze")
	ErrMissingSolver   = errors.New("solver is required")
	ErrMissingLogger   = errors.New("logger is required")
	ErrCacheNotEnabled = errors.New("result cache is not configured")
	ErrRepoNotEnabled  = errors.New("solve repository is not configured")
)

// Labyrinth reads mazes, solves them, and records the outcome.
// The cache and the repository are optional.
type Labyrinth struct {
	solver i.Solver
	cache  i.ResultCache
	repo   i.SolveRepo
	logger i.Logger
}

// NewLabyrinthService wires a Labyrinth. Pass nil for cache or repo to run without them.
func NewLabyrinthService(s i.Solver, cache i.ResultCache, repo i.SolveRepo, logger i.Logger) (*Labyrinth, error) {
	if s == nil {
		return nil, ErrMissingSolver
	}
	if logger == nil {
		return nil, ErrMissingLogger
	}

	return &Labyrinth{
		solver: s,
		cache:  cache,
		repo:   repo,
		logger: logger,
	}, nil
}

// SolveFile loads the maze at path and solves it.
func (l *Labyrinth) SolveFile(ctx context.Context, path string) (*dmn.SolveRecord, error) {
	g, err := maze.Load(path)
	if err != nil {
		if errors.Is(err, maze.ErrIO) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	return l.solve(ctx, g)
}

// SolveText parses a maze description and solves it.
func (l *Labyrinth) SolveText(ctx context.Context, text string) (*dmn.SolveRecord, error) {
	g, err := maze.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	return l.solve(ctx, g)
}

// Record returns a previously stored solve.
func (l *Labyrinth) Record(ctx context.Context, id uuid.UUID) (*dmn.SolveRecord, error) {
	if l.repo == nil {
		return nil, ErrRepoNotEnabled
	}
	return l.repo.ByID(ctx, id)
}

// Hardest lists the cached mazes that need the most turns.
func (l *Labyrinth) Hardest(ctx context.Context, limit int64) ([]dmn.RankedMaze, error) {
	if l.cache == nil {
		return nil, ErrCacheNotEnabled
	}
	if limit <= 0 {
		limit = 10
	}
	return l.cache.Hardest(ctx, limit)
}

func (l *Labyrinth) solve(ctx context.Context, g *maze.Grid) (*dmn.SolveRecord, error) {
	start := time.Now()
	record := &dmn.SolveRecord{
		ID:        uuid.New(),
		Digest:    g.Digest(),
		Width:     g.Width,
		Height:    g.Height,
		CreatedAt: start.UTC(),
	}

	result, cached, err := l.result(ctx, record.Digest, g)
	if err != nil {
		l.logger.Error(fmt.Sprintf("Solving maze %s: %v", shortDigest(record.Digest), err))
		return nil, err
	}

	record.Turns = result.Turns
	record.Found = result.Found
	record.Nodes = result.Nodes
	record.Cached = cached
	record.DurationMS = time.Since(start).Milliseconds()

	if l.repo != nil {
		if err := l.repo.Save(ctx, record); err != nil {
			l.logger.Error(fmt.Sprintf("Saving solve record %s: %v", record.ID, err))
			return nil, err
		}
	}

	l.logger.Info(fmt.Sprintf("Solved maze %s (%dx%d): found=%t turns=%d nodes=%d cached=%t",
		shortDigest(record.Digest), record.Width, record.Height, record.Found, record.Turns, record.Nodes, record.Cached))
	return record, nil
}

// result returns the cached outcome for digest or computes it under the cache lock.
func (l *Labyrinth) result(ctx context.Context, digest string, g *maze.Grid) (dmn.Result, bool, error) {
	if l.cache == nil {
		result, err := l.search(ctx, g)
		return result, false, err
	}

	if hit := l.cached(ctx, digest); hit != nil {
		return *hit, true, nil
	}

	unlock, err := l.cache.Lock(ctx, digest)
	if err != nil {
		l.logger.Warning(fmt.Sprintf("Locking maze %s, solving without lock: %v", shortDigest(digest), err))
		unlock = func() {}
	}
	defer unlock()

	// Another worker may have finished while we waited for the lock.
	if hit := l.cached(ctx, digest); hit != nil {
		return *hit, true, nil
	}

	result, err := l.search(ctx, g)
	if err != nil {
		return dmn.Result{}, false, err
	}
	if err := l.cache.Set(ctx, digest, result); err != nil {
		l.logger.Warning(fmt.Sprintf("Caching result of maze %s: %v", shortDigest(digest), err))
	}
	return result, false, nil
}

func (l *Labyrinth) cached(ctx context.Context, digest string) *dmn.Result {
	hit, err := l.cache.Get(ctx, digest)
	if err != nil {
		l.logger.Warning(fmt.Sprintf("Reading cached result of maze %s: %v", shortDigest(digest), err))
		return nil
	}
	return hit
}

func (l *Labyrinth) search(ctx context.Context, g *maze.Grid) (dmn.Result, error) {
	turns, stats, err := l.solver.Solve(ctx, g)
	switch {
	case errors.Is(err, solver.ErrNoPath):
		return dmn.Result{Found: false, Nodes: stats.Nodes}, nil
	case err != nil:
		return dmn.Result{}, err
	}
	return dmn.Result{Turns: turns, Found: true, Nodes: stats.Nodes}, nil
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
