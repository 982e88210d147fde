package maze

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrParse wraps every failure to turn text into a grid.
	ErrParse = errors.New("malformed maze input")
	// ErrIO wraps failures to read the maze source.
	ErrIO = errors.New("cannot read maze input")
)

// Parse builds a grid from its text description.
//
// The first line holds "height,width". It is followed by exactly height lines
// of exactly width digits each. Any digit other than 1 is a wall; any other
// character is an error.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrParse)
	}

	height, width, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	rows := lines[1:]
	if len(rows) != height {
		return nil, fmt.Errorf("%w: header declares %d rows, found %d", ErrParse, height, len(rows))
	}

	grid, err := New(width, height)
	if err != nil {
		return nil, err
	}

	for y, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d: header declares %d columns, found %d", ErrParse, y+2, width, len(line))
		}
		for x := 0; x < width; x++ {
			cell, ok := NewCell(line[x])
			if !ok {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not a digit", ErrParse, y+2, x+1, line[x])
			}
			grid.Rows[y][x] = cell
		}
	}

	return grid, nil
}

// Read parses a grid from the reader.
func Read(r io.Reader) (*Grid, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return Parse(string(content))
}

// Load parses a grid from the file at path.
func Load(path string) (*Grid, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return Parse(string(content))
}

// parseHeader reads the "height,width" line.
func parseHeader(line string) (int, int, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q must be \"height,width\"", ErrParse, line)
	}

	height, err := parseDimension(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height: %v", ErrParse, err)
	}
	width, err := parseDimension(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width: %v", ErrParse, err)
	}
	return height, width, nil
}

func parseDimension(s string) (int, error) {
	s = strings.TrimSpace(s)
	value, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%q is not a positive integer", s)
	}
	if value == 0 {
		return 0, errors.New("must be positive")
	}
	return int(value), nil
}
