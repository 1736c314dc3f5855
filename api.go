package npuzzle

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/npuzzle/internal/board"
)

// Move characters, named from the moving tile's point of view: U slides the
// tile below the blank up into it, D the tile above down, L the tile to the
// right left, R the tile to the left right.
const (
	MoveUp    = byte('U')
	MoveDown  = byte('D')
	MoveLeft  = byte('L')
	MoveRight = byte('R')
)

var (
	// ErrNoSolution reports a puzzle that cannot reach the solved
	// configuration. It is a verdict, not a failure of the search.
	ErrNoSolution = errors.New("npuzzle: no solution")

	// ErrExpansionLimit reports a search stopped by WithMaxExpansions
	// before reaching a verdict.
	ErrExpansionLimit = errors.New("npuzzle: expansion limit reached")
)

// Result contains the outcome of a search. An empty Moves with Found set
// means the puzzle was already solved.
type Result struct {
	Moves         string
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxExpansions   int
	Logger          *logrus.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many solves SolveAll runs concurrently.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions caps the number of expanded states; 0 means no cap.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// WithLogger routes search progress to the given logger at debug level.
func WithLogger(logger *logrus.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = logrus.New()
		searchOptions.Logger.SetOutput(io.Discard)
	}
	return searchOptions
}

// Solve executes an A* search over tile moves and returns a shortest move
// sequence from puzzle to the solved configuration, in which tile v sits at
// row-major cell v-1 and the blank is last. The puzzle must be a rectangle
// holding each value in 0..w*h-1 exactly once, 0 being the blank; anything
// else is rejected with an error. An unsolvable puzzle yields ErrNoSolution
// without any state being expanded.
func Solve(contextObject context.Context, puzzle [][]int, options ...Option) (Result, error) {
	searchOptions := applyOptions(options)
	log := searchOptions.Logger

	width, height, err := board.Validate(puzzle)
	if err != nil {
		return Result{}, fmt.Errorf("npuzzle: invalid puzzle: %w", err)
	}

	// An unsolvable board must never reach the frontier.
	if !IsSolvable(puzzle) {
		return Result{}, ErrNoSolution
	}

	initial := makeState(puzzle)
	if initial.Score(width) == 0 {
		return Result{Found: true}, nil
	}

	log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"h0":     initial.Score(width),
	}).Debug("starting search")

	// --- Initialize state ---
	openSet := make(frontier, 0)
	heap.Init(&openSet)
	heap.Push(&openSet, &frontierItem{State: initial})

	closedSet := make(map[string]*State)
	sequence := 0
	expandedNodes := 0

	// --- Expansion loop ---
	for openSet.Len() > 0 {
		if err := contextObject.Err(); err != nil {
			return Result{ExpandedNodes: expandedNodes}, err
		}

		currentItem := heap.Pop(&openSet).(*frontierItem)
		active := currentItem.State

		// Duplicates are allowed into the frontier and resolved here, at
		// pop time: a closed state was already expanded via an equal or
		// better path.
		if _, closed := closedSet[active.id()]; closed {
			continue
		}

		if active.Score(width) == 0 {
			moves := reconstructMoves(active, currentItem.Prev, closedSet)
			log.WithFields(logrus.Fields{
				"expanded": expandedNodes,
				"moves":    len(moves),
			}).Debug("goal reached")
			return Result{Moves: moves, ExpandedNodes: expandedNodes, Found: true}, nil
		}

		expandedNodes++
		if searchOptions.MaxExpansions > 0 && expandedNodes > searchOptions.MaxExpansions {
			return Result{ExpandedNodes: expandedNodes}, ErrExpansionLimit
		}
		if expandedNodes%100000 == 0 {
			log.WithFields(logrus.Fields{
				"expanded": expandedNodes,
				"open":     openSet.Len(),
			}).Debug("still searching")
		}

		expand(&openSet, closedSet, currentItem, width, height, &sequence)
		closedSet[active.id()] = currentItem.Prev
	}

	// Defensive: the solvability gate should make this unreachable.
	return Result{ExpandedNodes: expandedNodes}, ErrNoSolution
}

// moveDeltas lists the four candidate moves with the blank-relative cell
// each one pulls its tile from.
var moveDeltas = [4]struct {
	move   byte
	dx, dy int
}{
	{MoveUp, 0, 1},
	{MoveDown, 0, -1},
	{MoveLeft, 1, 0},
	{MoveRight, -1, 0},
}

// expand pushes every in-bounds, not-yet-closed successor of the current
// item onto the open set.
func expand(openSet *frontier, closedSet map[string]*State, currentItem *frontierItem, width, height int, sequence *int) {
	active := currentItem.State
	x, y := board.Coords(active.blankIndex(), width)

	for _, candidate := range moveDeltas {
		targetX := x + candidate.dx
		targetY := y + candidate.dy
		if targetX < 0 || targetX >= width || targetY < 0 || targetY >= height {
			continue
		}
		next := clone(active)
		next.applyMove(candidate.move, x, y, candidate.dx, candidate.dy, width)
		if _, closed := closedSet[next.id()]; closed {
			continue
		}
		*sequence++
		heap.Push(openSet, &frontierItem{
			FCost:  currentItem.GScore + 1 + next.Score(width),
			GScore: currentItem.GScore + 1,
			Seq:    *sequence,
			State:  next,
			Prev:   active,
		})
	}
}

// reconstructMoves walks predecessor links from the goal's predecessor back
// through the closed set to the start, reverses the collected moves,
// appends the goal's own move and drops the start's placeholder.
func reconstructMoves(end, prev *State, closedSet map[string]*State) string {
	moves := make([]byte, 0, 64)
	for current := prev; current != nil; {
		previous, visited := closedSet[current.id()]
		if !visited {
			break
		}
		moves = append(moves, current.move)
		current = previous
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	moves = append(moves, end.move)
	return string(moves[1:])
}
