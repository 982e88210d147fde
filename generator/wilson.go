/*
Package generator creates random mazes in the solver's input format.

Mazes are carved with Wilson's algorithm, which yields a uniform spanning tree
over a rectangle of rooms. The rooms are then drawn onto a digit grid twice as
large plus a border: every room and every opened wall becomes a 1, everything
else stays 0, and the border is broken at the entry (0,1) and at the exit one
row above the bottom-right corner.
*/
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/labyrinth/maze"
)

const (
	maxMazeDimension = 100
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// room is a position in the room lattice, before it is drawn onto the grid.
type room struct {
	Row int
	Col int
}

// passage connects two adjacent rooms.
type passage struct {
	From room
	To   room
}

// roomDeltas lists the four neighbours of a room. A slice keeps walks reproducible for a seed.
var roomDeltas = []room{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// WilsonMaze is a rectangle of rooms and the passages opened between them.
type WilsonMaze struct {
	Rows     int // Number of room rows
	Cols     int // Number of room columns
	passages []passage
	rng      *rand.Rand
}

// New carves a rows x cols room maze using the given seed.
func New(rows, cols int, seed int64) (*WilsonMaze, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > maxMazeDimension {
		return nil, fmt.Errorf("%w: %dx%d, each side must be within 1..%d", ErrInvalidDimensions, rows, cols, maxMazeDimension)
	}

	m := &WilsonMaze{
		Rows: rows,
		Cols: cols,
		rng:  rand.New(rand.NewSource(seed)),
	}
	m.generateMaze()
	return m, nil
}

// randomRoom picks a random room.
func (m *WilsonMaze) randomRoom() room {
	return room{Row: m.rng.Intn(m.Rows), Col: m.rng.Intn(m.Cols)}
}

// randomUnvisitedRoom picks a random room that is not yet part of the tree.
func (m *WilsonMaze) randomUnvisitedRoom(visited map[room]struct{}) room {
	for {
		r := m.randomRoom()
		if _, included := visited[r]; !included {
			return r
		}
	}
}

// neighbors lists the rooms next to r that lie inside the maze.
func (m *WilsonMaze) neighbors(r room) []room {
	var result []room
	for _, delta := range roomDeltas {
		n := room{Row: r.Row + delta.Row, Col: r.Col + delta.Col}
		if n.Row >= 0 && n.Row < m.Rows && n.Col >= 0 && n.Col < m.Cols {
			result = append(result, n)
		}
	}
	return result
}

// randomWalk walks from an unvisited room until it hits the tree.
// Loops erase themselves because each room remembers only its last exit.
func (m *WilsonMaze) randomWalk(visited map[room]struct{}) (room, map[room]room) {
	start := m.randomUnvisitedRoom(visited)
	exits := make(map[room]room)
	current := start

	for {
		neighbors := m.neighbors(current)
		next := neighbors[m.rng.Intn(len(neighbors))]
		exits[current] = next
		if _, included := visited[next]; included {
			break
		}
		current = next
	}

	return start, exits
}

// generateMaze adds loop-erased random walks to the tree until it spans every room.
func (m *WilsonMaze) generateMaze() {
	visited := make(map[room]struct{}, m.Rows*m.Cols)
	visited[m.randomRoom()] = struct{}{}

	for len(visited) < m.Rows*m.Cols {
		start, exits := m.randomWalk(visited)

		// Follow the surviving exits from the start so erased loops are dropped.
		for current := start; ; {
			if _, included := visited[current]; included {
				break
			}
			next := exits[current]
			m.passages = append(m.passages, passage{From: current, To: next})
			visited[current] = struct{}{}
			current = next
		}
	}
}

// Grid draws the maze onto a digit grid of (2*Rows+1) x (2*Cols+1) cells.
func (m *WilsonMaze) Grid() *maze.Grid {
	// Dimensions are positive by construction.
	g, _ := maze.New(2*m.Cols+1, 2*m.Rows+1)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			g.SetPath(roomCoordinate(room{Row: row, Col: col}), true)
		}
	}

	for _, p := range m.passages {
		from, to := roomCoordinate(p.From), roomCoordinate(p.To)
		g.SetPath(maze.Coordinate{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}, true)
	}

	g.SetPath(maze.Start, true)
	g.SetPath(g.Exit(), true)
	return g
}

// String renders the maze in the solver's input format.
func (m *WilsonMaze) String() string {
	return m.Grid().String()
}

func roomCoordinate(r room) maze.Coordinate {
	return maze.Coordinate{X: 2*r.Col + 1, Y: 2*r.Row + 1}
}
