// Package board provides flat-board helpers shared by the solver.
package board

import "fmt"

// Index maps grid coordinates to the flat row-major index.
func Index(x, y, width int) int { return y*width + x }

// Coords is the inverse of Index.
func Coords(index, width int) (x, y int) { return index % width, index / width }

// Flatten copies a rectangular grid into a new row-major slice.
func Flatten(rows [][]int) []int {
	if len(rows) == 0 {
		return nil
	}
	flat := make([]int, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}

// Validate checks that rows form a rectangle of width >= 1 holding each
// value in 0..w*h-1 exactly once, and returns the dimensions on success.
func Validate(rows [][]int) (width, height int, err error) {
	height = len(rows)
	if height == 0 {
		return 0, 0, fmt.Errorf("board has no rows")
	}
	width = len(rows[0])
	if width == 0 {
		return 0, 0, fmt.Errorf("board row 0 is empty")
	}
	seen := make([]bool, width*height)
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, fmt.Errorf("board row %d has %d cells, want %d", y, len(row), width)
		}
		for x, value := range row {
			if value < 0 || value >= len(seen) {
				return 0, 0, fmt.Errorf("board value %d at (%d,%d) out of range", value, x, y)
			}
			if seen[value] {
				return 0, 0, fmt.Errorf("board value %d appears twice", value)
			}
			seen[value] = true
		}
	}
	return width, height, nil
}
