package npuzzle

import "github.com/pdrpinto/npuzzle/internal/board"

// IsSolvable reports whether the puzzle can reach the solved configuration,
// by the classic parity argument: count inversions over the flattened board
// with the blank removed; for odd widths the count must be even, for even
// widths the count plus the blank row's distance from the bottom must be
// even. The pairwise count is O(n^2) in the tile count, which stays trivial
// next to the search it gates.
func IsSolvable(puzzle [][]int) bool {
	width := len(puzzle[0])
	flat := board.Flatten(puzzle)

	tiles := make([]int, 0, len(flat)-1)
	blankRow := 0
	for i, value := range flat {
		if value == blank {
			blankRow = i / width
			continue
		}
		tiles = append(tiles, value)
	}

	inversions := 0
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			if tiles[j] < tiles[i] {
				inversions++
			}
		}
	}

	if width%2 == 1 {
		return inversions%2 == 0
	}
	rowsFromBottom := len(puzzle) - 1 - blankRow
	return (inversions+rowsFromBottom)%2 == 0
}
