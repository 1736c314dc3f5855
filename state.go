package npuzzle

import "github.com/pdrpinto/npuzzle/internal/board"

// blank is the sentinel value of the empty cell.
const blank = 0

// scoreUnset marks a score cache that has not been computed yet.
const scoreUnset = -1

// State is one puzzle configuration: the board flattened row-major, the
// move that produced it, and two caches that are pure functions of the
// board content. Each State owns its flat slice exclusively.
type State struct {
	flat  []int
	move  byte   // 'U', 'D', 'L' or 'R'; zero for the initial state
	score int    // cached Manhattan sum, scoreUnset until computed
	key   string // cached identity key, "" until computed
}

// makeState flattens the puzzle into a fresh State with cold caches.
func makeState(puzzle [][]int) *State {
	return &State{flat: board.Flatten(puzzle), score: scoreUnset}
}

// clone deep-copies the board and carries both caches over, which is valid
// because the content is identical at copy time.
func clone(source *State) *State {
	flat := make([]int, len(source.flat))
	copy(flat, source.flat)
	return &State{flat: flat, score: source.score, key: source.key}
}

// Score returns the sum of Manhattan distances of every tile from its goal
// cell, computing and caching it on first use. Tile v belongs at flat index
// v-1, so the board is solved exactly when the score is 0.
func (s *State) Score(width int) int {
	if s.score == scoreUnset {
		total := 0
		for i, value := range s.flat {
			if value == blank {
				continue
			}
			want := value - 1
			total += abs(want%width-i%width) + abs(want/width-i/width)
		}
		s.score = total
	}
	return s.score
}

// applyMove swaps the blank at (x, y) with the tile at (x+dx, y+dy). The
// cached score is kept in step by removing the moving tile's distance
// contribution at its old cell and adding it at the blank's cell; only that
// one tile changed position, so the result matches a full recomputation.
// The caller must have bounds-checked the target cell and computed the
// score at least once before the first move.
func (s *State) applyMove(move byte, x, y, dx, dy, width int) {
	s.move = move
	s.key = ""
	blankIndex := board.Index(x, y, width)
	tileIndex := board.Index(x+dx, y+dy, width)
	tile := s.flat[tileIndex]
	want := tile - 1
	s.score -= abs(want%width-tileIndex%width) + abs(want/width-tileIndex/width)
	s.score += abs(want%width-blankIndex%width) + abs(want/width-blankIndex/width)
	s.flat[blankIndex] = tile
	s.flat[tileIndex] = blank
}

// id returns the content-derived key used for closed-map lookups, two bytes
// per cell. Two States are equal iff their boards are equal; comparing the
// full key avoids the collision risk of comparing hashes alone.
func (s *State) id() string {
	if s.key == "" {
		raw := make([]byte, 0, 2*len(s.flat))
		for _, value := range s.flat {
			raw = append(raw, byte(value), byte(value>>8))
		}
		s.key = string(raw)
	}
	return s.key
}

// blankIndex locates the blank in the flat board.
func (s *State) blankIndex() int {
	for i, value := range s.flat {
		if value == blank {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
