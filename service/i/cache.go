package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth/domain"
)

// ResultCache stores search results keyed by maze digest.
type ResultCache interface {
	// Get returns the cached result, or nil when the digest is unknown.
	Get(ctx context.Context, digest string) (*dmn.Result, error)

	// Set stores a result and, when the exit was found, ranks the maze by its turns.
	Set(ctx context.Context, digest string, result dmn.Result) error

	// Lock serialises work on one digest across processes. Call the returned func to release it.
	Lock(ctx context.Context, digest string) (func(), error)

	// Hardest returns up to limit mazes with the most turns, hardest first.
	Hardest(ctx context.Context, limit int64) ([]dmn.RankedMaze, error)
}
