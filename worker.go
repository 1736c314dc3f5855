package npuzzle

import (
	"context"
	"sync"
)

// batchTask pairs a puzzle with its slot in the result slice.
type batchTask struct {
	index  int
	puzzle [][]int
}

// BatchResult is the outcome of one puzzle in a SolveAll run.
type BatchResult struct {
	Index  int
	Result Result
	Err    error
}

// SolveAll solves independent puzzles concurrently on a worker pool of
// Options.NumberOfWorkers goroutines. Every solve owns its own frontier
// and closed map, so puzzles never share state. Results come back in input
// order, one per puzzle, with failures kept per-puzzle rather than
// aborting the batch.
func SolveAll(contextObject context.Context, puzzles [][][]int, options ...Option) []BatchResult {
	searchOptions := applyOptions(options)
	workers := searchOptions.NumberOfWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(puzzles) {
		workers = len(puzzles)
	}

	results := make([]BatchResult, len(puzzles))
	tasks := make(chan batchTask)

	var waitGroup sync.WaitGroup
	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for task := range tasks {
				result, err := Solve(contextObject, task.puzzle, options...)
				results[task.index] = BatchResult{Index: task.index, Result: result, Err: err}
			}
		}()
	}

	// Workers drain the channel even after cancellation; Solve itself
	// notices the dead context, so every slot still gets an answer.
	for index, puzzle := range puzzles {
		tasks <- batchTask{index: index, puzzle: puzzle}
	}
	close(tasks)
	waitGroup.Wait()

	return results
}
