// Package crossing provides the wolf–goat–cabbage river puzzle as a
// plug-in state space for the search engine.
//
// What
//
//   - Four travelers on two banks; the boat holds the farmer and at
//     most one passenger.
//   - Unsafe arrangements (wolf with goat, or goat with cabbage, on a
//     bank the farmer left) are never generated as successors, so the
//     searched space holds only the ten legal positions.
//   - The goal is the whole party on the far bank.
//
// Why
//
//   - The smallest interesting reachability puzzle: two optimal
//     solutions, both seven crossings, mirror images of each other.
//     Breadth-first happens to ferry the wolf second; depth-first, the
//     cabbage. Both disciplines tie on length here, a neat contrast to
//     puzzles where diving costs extra moves.
//
// Usage
//
//	res, err := search.Solve(crossing.Start())
//	for _, s := range res.Path {
//	    fmt.Println(s)
//	}
//	// seven crossings from near[wolf goat cabbage farmer] to far[...].
//
// See: docs/PUZZLES.md for the full family of bundled state spaces.
package crossing
