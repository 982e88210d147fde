package maze

// pathDigit is the only digit that marks a cell as walkable.
const pathDigit = 1

// Cell represents a single cell in a maze grid.
// It holds the digit read from the input and a transient visited marker.
type Cell struct {
	Digit   uint8 // Digit as read from the input; anything but 1 is a wall.
	Visited bool  // Visited is set while a search holds this cell on its path.
}

// NewCell builds a cell from an input character. Digits other than 1 become walls.
func NewCell(ch byte) (Cell, bool) {
	if ch < '0' || ch > '9' {
		return Cell{}, false
	}
	return Cell{Digit: ch - '0'}, true
}

// IsPath returns true if the cell can be walked on.
func (c *Cell) IsPath() bool {
	return c.Digit == pathDigit
}
