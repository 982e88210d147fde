// Package bincalc decodes text files that hold one base-2 integer per line.
// It shares the input files of the maze solver but nothing else.
package bincalc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseBinaryLines parses every line of text as a signed 32-bit base-2
// integer. Lines that do not parse, such as a maze header, are skipped.
func ParseBinaryLines(text string) []int64 {
	var values []int64
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		value, err := strconv.ParseInt(line, 2, 32)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values
}

// ParseBinaryFile reads the file at path and decodes it with ParseBinaryLines.
func ParseBinaryFile(path string) ([]int64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseBinaryLines(string(content)), nil
}
