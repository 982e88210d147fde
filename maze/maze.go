/*
Package maze provides the grid model used by the turn-minimising solver.

A maze is a rectangle of cells read from a text description: a "height,width"
header followed by one line of digits per row, where 1 marks a walkable cell
and every other digit a wall. The entry is always at column 0 of the second
row and the exit at the last column of the second-to-last row, so the outer
border is expected to be wall apart from those two breaks.

The grid also carries a visited flag per cell that a search sets and clears
as it walks, which makes a Grid single-owner: one search at a time.
*/
package maze

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Grid holds the cells of a maze together with its declared dimensions.
type Grid struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Rows   [][]Cell // Rows of cells, top to bottom
}

// New creates a wall-only grid of the given dimensions.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrParse, width, height)
	}

	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Rows:   rows,
	}, nil
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Cell returns the cell at the coordinate, or nil when it is out of bounds.
func (g *Grid) Cell(c Coordinate) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.Rows[c.Y][c.X]
}

// SetPath marks the cell at the coordinate as walkable or wall.
func (g *Grid) SetPath(c Coordinate, path bool) {
	cell := g.Cell(c)
	if cell == nil {
		return
	}
	if path {
		cell.Digit = pathDigit
	} else {
		cell.Digit = 0
	}
}

// IsTraversable reports whether the cell at the coordinate holds a 1.
func (g *Grid) IsTraversable(c Coordinate) bool {
	cell := g.Cell(c)
	return cell != nil && cell.IsPath()
}

// Exit returns the fixed exit location: last column, one row above the bottom edge.
func (g *Grid) Exit() Coordinate {
	return Coordinate{X: g.Width - 1, Y: g.Height - 2}
}

// IsExit reports whether the coordinate is the exit.
func (g *Grid) IsExit(c Coordinate) bool {
	return c == g.Exit()
}

// Neighbours returns the unvisited walkable cells next to c,
// in the order left, up, right, down.
func (g *Grid) Neighbours(c Coordinate) []Coordinate {
	candidates := [4]Coordinate{
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
	}

	result := make([]Coordinate, 0, len(candidates))
	for _, n := range candidates {
		cell := g.Cell(n)
		if cell == nil || cell.Visited || !cell.IsPath() {
			continue
		}
		result = append(result, n)
	}
	return result
}

// MarkVisited sets or clears the visited flag of the cell at c.
func (g *Grid) MarkVisited(c Coordinate, visited bool) {
	if cell := g.Cell(c); cell != nil {
		cell.Visited = visited
	}
}

// IsVisited reports whether the cell at c is currently marked.
func (g *Grid) IsVisited(c Coordinate) bool {
	cell := g.Cell(c)
	return cell != nil && cell.Visited
}

// VisitedCount returns how many cells are currently marked.
func (g *Grid) VisitedCount() int {
	count := 0
	for y := range g.Rows {
		for x := range g.Rows[y] {
			if g.Rows[y][x].Visited {
				count++
			}
		}
	}
	return count
}

// Reset clears every visited flag.
func (g *Grid) Reset() {
	for y := range g.Rows {
		for x := range g.Rows[y] {
			g.Rows[y][x].Visited = false
		}
	}
}

// String renders the grid in its input format, header included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * (g.Height + 1))

	fmt.Fprintf(&sb, "%d,%d\n", g.Height, g.Width)
	for _, row := range g.Rows {
		for _, cell := range row {
			sb.WriteByte('0' + cell.Digit)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Digest returns a hex SHA-256 of the rendered grid. Equal mazes share a digest.
func (g *Grid) Digest() string {
	sum := sha256.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}
