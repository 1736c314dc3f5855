// Package npuzzle solves sliding tile puzzles (the 8-puzzle, the 15-puzzle
// and friends) with an A* search over tile moves.
//
// It exposes three main entry points:
//
//   - Solve: run the search to completion and get a Result with an optimal move sequence.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SolveAll: solve independent puzzles concurrently on a worker pool.
//
// Each search is single-threaded and owns its frontier and closed map
// exclusively, which is what makes concurrent independent solves safe.
// Solvability is decided up front by the inversion parity theorem, so an
// impossible board is rejected before a single state is expanded.
package npuzzle
