package npuzzle

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/pdrpinto/npuzzle/internal/board"
)

// StepSnapshot exposes the per-iteration state of the search. Board and
// Score describe the state expanded by this step; Board is nil and Score
// is -1 for terminal snapshots that did not expand anything.
type StepSnapshot struct {
	Board       []int
	Score       int
	OpenCount   int
	ClosedCount int
	Done        bool
	Found       bool
	Moves       string
	StepIndex   int
}

// Stepper drives the same search as Solve one expansion at a time, for UIs
// and debugging tools. Outcomes surface through the snapshot: Done with
// Found unset means the puzzle has no solution.
type Stepper struct {
	ctx           context.Context
	cancel        context.CancelFunc
	width         int
	height        int
	maxExpansions int

	openSet   frontier
	closedSet map[string]*State
	sequence  int

	stepCount int
	done      bool
	found     bool
	moves     string
}

// NewStepper validates the puzzle and prepares a step-by-step search. An
// unsolvable or already-solved board yields a terminal snapshot on the
// first Step.
func NewStepper(parent context.Context, puzzle [][]int, options ...Option) (*Stepper, error) {
	searchOptions := applyOptions(options)

	width, height, err := board.Validate(puzzle)
	if err != nil {
		return nil, fmt.Errorf("npuzzle: invalid puzzle: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper{
		ctx: ctx, cancel: cancel,
		width: width, height: height,
		maxExpansions: searchOptions.MaxExpansions,
		openSet:       make(frontier, 0),
		closedSet:     make(map[string]*State),
	}
	heap.Init(&s.openSet)

	if !IsSolvable(puzzle) {
		s.done = true
		return s, nil
	}
	initial := makeState(puzzle)
	if initial.Score(width) == 0 {
		s.done = true
		s.found = true
		return s, nil
	}
	heap.Push(&s.openSet, &frontierItem{State: initial})
	return s, nil
}

// Close releases the stepper's context.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one expansion and returns a snapshot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(nil), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return s.snapshot(nil), err
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return s.snapshot(nil), nil
	}

	s.stepCount++
	currentItem := heap.Pop(&s.openSet).(*frontierItem)
	active := currentItem.State
	if _, closed := s.closedSet[active.id()]; closed {
		return s.Step()
	}

	if active.Score(s.width) == 0 {
		s.done = true
		s.found = true
		s.moves = reconstructMoves(active, currentItem.Prev, s.closedSet)
		return s.snapshot(active), nil
	}

	if s.maxExpansions > 0 && s.stepCount > s.maxExpansions {
		s.done = true
		return s.snapshot(active), ErrExpansionLimit
	}

	expand(&s.openSet, s.closedSet, currentItem, s.width, s.height, &s.sequence)
	s.closedSet[active.id()] = currentItem.Prev

	return s.snapshot(active), nil
}

func (s *Stepper) snapshot(active *State) StepSnapshot {
	snap := StepSnapshot{
		Score:       -1,
		OpenCount:   s.openSet.Len(),
		ClosedCount: len(s.closedSet),
		Done:        s.done,
		Found:       s.found,
		Moves:       s.moves,
		StepIndex:   s.stepCount,
	}
	if active != nil {
		snap.Board = append([]int(nil), active.flat...)
		snap.Score = active.score
	}
	return snap
}
