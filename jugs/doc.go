// Package jugs provides the water-measuring puzzle as a plug-in state
// space for the search engine: a set of capped jugs, pour-only moves,
// and a target reading.
//
// What
//
//   - Model n jugs with fixed capacities holding integer amounts.
//   - The only move is a pour between two jugs: water flows until the
//     source empties or the destination fills, whichever comes first.
//   - A state is the vector of current amounts; the goal is an exact
//     reading of every jug.
//   - Puzzle carries the fixed configuration (capacities, goal);
//     State carries one reading and implements search.State.
//
// Why
//
//   - The canonical reachability exercise: small state space, heavy
//     duplicate folding (many pour sequences produce the same reading),
//     and a crisp shortest-path question ("fewest pours").
//   - Total volume is conserved, so unsolvable instances exhaust their
//     space quickly and demonstrate the engine's honest ErrUnsolvable.
//
// Usage
//
//	p, err := jugs.New([]int{3, 5, 8}, []int{0, 4, 4})
//	if err != nil { /* bad shape */ }
//	start, err := p.Start([]int{0, 0, 8})
//	if err != nil { /* bad reading */ }
//
//	res, err := search.Solve(start)
//	// res.Path now holds the eight readings of the classic 7-pour split;
//	// jugs.Classic() is a shortcut for this exact instance.
//
// Errors
//
//   - ErrNoJugs     if the capacity list is empty.
//   - ErrCapacity   if any capacity is zero or negative.
//   - ErrDimension  if a reading length differs from the jug count.
//   - ErrOverflow   if a reading is negative or above capacity.
//
// See: docs/PUZZLES.md for the full family of bundled state spaces.
package jugs
