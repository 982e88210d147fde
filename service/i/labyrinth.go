package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/google/uuid"
)

// LabyrinthService solves mazes and answers questions about past solves.
type LabyrinthService interface {
	SolveText(ctx context.Context, text string) (*dmn.SolveRecord, error)
	Record(ctx context.Context, id uuid.UUID) (*dmn.SolveRecord, error)
	Hardest(ctx context.Context, limit int64) ([]dmn.RankedMaze, error)
}
