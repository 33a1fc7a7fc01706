// Package sliding provides the sliding-tile puzzle on an arbitrary
// rows×cols board as a plug-in state space for the search engine.
//
// What
//
//   - A board of rows×cols cells holds the tiles 1..n-1 plus one blank.
//   - A move slides an orthogonal neighbor of the blank into it.
//   - The goal reads the tiles in ascending order with the blank last.
//   - New builds an explicit arrangement; Solved builds the goal;
//     Scramble random-walks a solvable instance of bounded difficulty.
//
// Why
//
//   - The 8-puzzle (3×3) is the standard stress case for uninformed
//     search: 181 440 reachable arrangements, four-way branching, and
//     exactly half of all permutations unreachable, which exercises
//     honest exhaustion alongside shortest-path solving.
//   - Scramble gives reproducible benchmarks: a k-slide walk is never
//     more than k optimal moves from its origin.
//
// Determinism
//
//	Successors are emitted in N, E, S, W order of the sliding tile
//	relative to the blank, so solves are fully reproducible; Scramble
//	takes an explicit *rand.Rand and panics on nil rather than hide a
//	seed policy.
//
// Usage
//
//	start, err := sliding.New([][]int{
//	    {1, 2, 3},
//	    {4, 0, 6},
//	    {7, 5, 8},
//	})
//	if err != nil { /* bad arrangement */ }
//
//	res, err := search.Solve(start)
//	// res.Moves() == 2: slide 5 up, then 8 left.
//
// Errors
//
//   - ErrEmptyBoard      if the grid has no rows or no columns.
//   - ErrNonRectangular  if any row length differs.
//   - ErrBoardSize       if the geometry has fewer than two cells.
//   - ErrTileSet         if the tiles are not a permutation of 0..n-1.
//
// See: docs/PUZZLES.md for the full family of bundled state spaces.
package sliding
