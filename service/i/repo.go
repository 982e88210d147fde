package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/google/uuid"
)

// SolveRepo defines the interface for solve record persistence.
type SolveRepo interface {
	// Save inserts or updates a solve record.
	Save(ctx context.Context, record *dmn.SolveRecord) error

	// ByID retrieves a record by its unique ID.
	// Returns an error if the record is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.SolveRecord, error)
}
