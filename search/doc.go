// Package search provides a production-grade uninformed search engine over
// arbitrary finite state spaces, returning the solution path from an initial
// state to a goal state together with exploration counters.
//
// What
//
//   - Explore the states reachable from an initial State by repeated
//     successor expansion, until a goal state is reached.
//   - Puzzles plug in through a three-method State contract:
//   - Key: canonical form, the deduplication identity
//   - IsGoal: the goal test
//   - Successors: one-move transitions, in reproducible order
//   - Returns a Result containing:
//   - Path: solution states in order, initial through goal inclusive
//   - Expanded: number of states whose successors were generated
//   - Discovered: number of distinct canonical forms recorded
//   - Supports functional hooks at three stages:
//   - OnEnqueue (novel state pushed onto the frontier)
//   - OnDequeue (state popped to become the next candidate)
//   - OnExpand  (candidate about to be expanded; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Honors caller-supplied context cancellation via WithContext.
//
// Why
//
//   - Solve reachability puzzles (water jugs, sliding tiles, river
//     crossings, constraint placements) with one engine and tiny,
//     self-contained state types.
//   - Breadth-first order yields the minimum number of moves without any
//     cost model or heuristic.
//   - The trail of predecessor links makes the full solution path, not
//     just its existence, available at no extra cost.
//
// Determinism
//
//	Because Successors returns states in a fixed order and the frontier
//	preserves insertion order within its discipline, two Solve calls on
//	the same initial state produce identical paths and identical counters.
//
// Strategy
//
//	The frontier discipline is the only difference between strategies.
//	FIFO (default) expands states in discovery order: breadth-first,
//	shortest path guaranteed. LIFO (WithDepthFirst) expands the newest
//	discovery first: depth-first, first path found, not necessarily
//	shortest. Termination is guaranteed either way on finite spaces,
//	since each canonical form is admitted to the frontier at most once.
//
// Complexity (S = reachable canonical states, B = max successors per state)
//
//   - Time:   O(S·B)  (each state expanded at most once)
//   - Memory: O(S)    (frontier + trail)
//
// Usage
//
//	// Breadth-first solve with no options:
//	res, err := search.Solve(start)
//	if err != nil {
//	    // handle one of:
//	    // ErrNilStart, ErrUnsolvable, ErrNilSuccessor, ErrOptionViolation,
//	    // ctx.Err(), or a wrapped OnExpand error
//	}
//	for _, s := range res.Path {
//	    fmt.Println(s.Key())
//	}
//
//	// With functional options:
//	res, err := search.Solve(
//	    start,
//	    search.WithContext(ctx),
//	    search.WithDepthFirst(),
//	    search.WithMaxDepth(40),
//	    search.WithOnEnqueue(func(s search.State, depth int) { /* ... */ }),
//	    search.WithOnDequeue(func(s search.State, depth int) { /* ... */ }),
//	    search.WithOnExpand(func(s search.State, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, FIFO frontier, no depth limit, no-op hooks.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithDepthFirst():   switch the frontier to LIFO discipline.
//   - WithMaxDepth(d):    stop exploring beyond d moves (>0).
//   - WithOnEnqueue(fn):  hook when a novel state joins the frontier.
//   - WithOnDequeue(fn):  hook when a state leaves the frontier.
//   - WithOnExpand(fn):   hook before expansion; returning error aborts the solve.
//
// Errors
//
//   - ErrNilStart        if the initial state is nil.
//   - ErrUnsolvable      if the reachable space is exhausted without a goal.
//   - ErrNilSuccessor    if a Successors implementation yields a nil state.
//   - ErrOptionViolation if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnExpand.
//
// See: docs/SEARCH.md for detailed tutorial, pseudocode, and diagrams.
package search
