package maze

import (
	"errors"
	"fmt"
)

// Direction is the heading of a single unit step between two cells.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var (
	// ErrNotAdjacent reports a direction request between two coordinates that
	// are not one unit step apart. It signals a bug in neighbour generation.
	ErrNotAdjacent = errors.New("coordinates are not adjacent")

	directionNames = map[Direction]string{
		Up:    "Up",
		Down:  "Down",
		Left:  "Left",
		Right: "Right",
	}
)

// String returns the name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Coordinate identifies a cell of the grid. X is the column, Y is the row.
type Coordinate struct {
	X int // Column index
	Y int // Row index, counted from the first line after the header
}

// Start is the entry point of every maze: column 0, one row below the top edge.
var Start = Coordinate{X: 0, Y: 1}

// String renders the coordinate as (x,y).
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// DirectionTo returns the direction of a unit step from c to the given coordinate.
func (c Coordinate) DirectionTo(to Coordinate) (Direction, error) {
	dx := to.X - c.X
	dy := to.Y - c.Y

	switch {
	case dx == 1 && dy == 0:
		return Right, nil
	case dx == -1 && dy == 0:
		return Left, nil
	case dx == 0 && dy == 1:
		return Down, nil
	case dx == 0 && dy == -1:
		return Up, nil
	default:
		return 0, fmt.Errorf("%w: %s -> %s", ErrNotAdjacent, c, to)
	}
}
