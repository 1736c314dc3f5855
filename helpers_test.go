package npuzzle

import (
	"math/rand"
	"testing"
)

// moveTestDeltas mirrors the move semantics: each character names the cell,
// relative to the blank, whose tile slides into the blank.
var moveTestDeltas = map[byte][2]int{
	'U': {0, 1},
	'D': {0, -1},
	'L': {1, 0},
	'R': {-1, 0},
}

// goalGrid builds the solved configuration: 1..w*h-1 row-major, blank last.
func goalGrid(width, height int) [][]int {
	grid := make([][]int, height)
	value := 1
	for y := range grid {
		grid[y] = make([]int, width)
		for x := range grid[y] {
			grid[y][x] = value % (width * height)
			value++
		}
	}
	return grid
}

func copyGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for y, row := range grid {
		out[y] = append([]int(nil), row...)
	}
	return out
}

func gridsEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func findBlank(grid [][]int) (x, y int) {
	for row := range grid {
		for col, value := range grid[row] {
			if value == blank {
				return col, row
			}
		}
	}
	return -1, -1
}

// applyMoves replays a move string on a copy of the grid, failing the test
// on any out-of-bounds move.
func applyMoves(t *testing.T, grid [][]int, moves string) [][]int {
	t.Helper()
	out := copyGrid(grid)
	width, height := len(out[0]), len(out)
	for i := 0; i < len(moves); i++ {
		delta, ok := moveTestDeltas[moves[i]]
		if !ok {
			t.Fatalf("move %d: unknown move %q", i, moves[i])
		}
		x, y := findBlank(out)
		targetX, targetY := x+delta[0], y+delta[1]
		if targetX < 0 || targetX >= width || targetY < 0 || targetY >= height {
			t.Fatalf("move %d (%c): target (%d,%d) out of bounds", i, moves[i], targetX, targetY)
		}
		out[y][x], out[targetY][targetX] = out[targetY][targetX], out[y][x]
	}
	return out
}

// shuffledGrid walks the blank through steps random legal swaps, starting
// from the solved configuration. Every state it can produce is solvable.
func shuffledGrid(rng *rand.Rand, width, height, steps int) [][]int {
	grid := goalGrid(width, height)
	for i := 0; i < steps; i++ {
		x, y := findBlank(grid)
		candidates := make([][2]int, 0, 4)
		for _, delta := range moveTestDeltas {
			targetX, targetY := x+delta[0], y+delta[1]
			if targetX >= 0 && targetX < width && targetY >= 0 && targetY < height {
				candidates = append(candidates, [2]int{targetX, targetY})
			}
		}
		pick := candidates[rng.Intn(len(candidates))]
		grid[y][x], grid[pick[1]][pick[0]] = grid[pick[1]][pick[0]], grid[y][x]
	}
	return grid
}

func gridKey(grid [][]int) string {
	raw := make([]byte, 0, 2*len(grid)*len(grid[0]))
	for _, row := range grid {
		for _, value := range row {
			raw = append(raw, byte(value), byte(value>>8))
		}
	}
	return string(raw)
}

// bfsDistance finds the true shortest-path distance to the goal by plain
// breadth-first search. Only meant for small boards.
func bfsDistance(puzzle [][]int) (int, bool) {
	width, height := len(puzzle[0]), len(puzzle)
	goal := gridKey(goalGrid(width, height))

	start := copyGrid(puzzle)
	if gridKey(start) == goal {
		return 0, true
	}

	visited := map[string]bool{gridKey(start): true}
	queue := [][][]int{start}
	depth := 0
	for len(queue) > 0 {
		depth++
		next := make([][][]int, 0, 4*len(queue))
		for _, grid := range queue {
			x, y := findBlank(grid)
			for _, delta := range moveTestDeltas {
				targetX, targetY := x+delta[0], y+delta[1]
				if targetX < 0 || targetX >= width || targetY < 0 || targetY >= height {
					continue
				}
				child := copyGrid(grid)
				child[y][x], child[targetY][targetX] = child[targetY][targetX], child[y][x]
				key := gridKey(child)
				if visited[key] {
					continue
				}
				if key == goal {
					return depth, true
				}
				visited[key] = true
				next = append(next, child)
			}
		}
		queue = next
	}
	return 0, false
}
