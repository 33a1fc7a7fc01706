// Package queens provides n-queens placement as a plug-in state space
// for the search engine.
//
// What
//
//   - A state is a valid partial placement: one queen per filled row,
//     none attacking another.
//   - A move places a queen in an unattacked column of the next empty
//     row; dead placements simply have no successors.
//   - A full placement is a solution, so the goal test is just "all
//     rows filled".
//   - Key folds left-right mirror images together, pruning about half
//     the tree without losing any solution.
//
// Why
//
//   - The natural depth-first showcase: every move strictly grows the
//     placement, so diving finds a solution without the breadth-first
//     memory bill, and the non-shortest caveat is moot — every solution
//     sits at depth n.
//   - A constraint puzzle where unsolvable sizes (n = 2, 3) exhaust
//     honestly rather than loop.
//
// Usage
//
//	start, err := queens.New(6)
//	if err != nil { /* bad size */ }
//
//	res, err := search.Solve(start, search.WithDepthFirst())
//	// res.Path climbs from the empty board to a full placement;
//	// res.Path[len(res.Path)-1].(queens.State).Columns() is the answer.
//
// Errors
//
//   - ErrBoardSize if n < 1.
//
// See: docs/PUZZLES.md for the full family of bundled state spaces.
package queens
