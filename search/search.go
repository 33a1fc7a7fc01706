// Package search implements uninformed state-space search: breadth-first
// by default, depth-first on request, over any type satisfying State.
package search

import "fmt"

// Solve explores the state space reachable from start until a state
// satisfying the goal test is popped from the frontier, returning the
// solution path together with exploration counters.
//
// The frontier discipline decides the strategy: FIFO (default) expands
// states in discovery order and returns a path with the minimum number
// of moves; LIFO (WithDepthFirst) dives along the most recent discovery
// and returns the first solution it happens to reach. Both terminate on
// finite state spaces because each canonical form is admitted at most
// once.
//
// Errors:
//   - ErrNilStart        if start is nil
//   - ErrOptionViolation if an invalid Option was supplied
//   - ErrUnsolvable      if the reachable space is exhausted without a goal
//   - ErrNilSuccessor    if a Successors implementation yields nil
//   - ctx.Err()          if the supplied context expires mid-search
//
// An error means no result: the returned *Result is nil and no partial
// path is available. Panics raised inside State methods are not
// recovered; a malformed puzzle definition fails loudly at the call site.
func Solve(start State, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if start == nil {
		return nil, ErrNilStart
	}

	// 2. Apply functional options and surface recorded violations.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Initialize the walker: empty frontier, trail seeded with the
	//    initial state so it can never be rediscovered.
	w := &walker{
		opts:  o,
		front: frontier{lifo: o.DepthFirst},
		trail: make(ledger),
		res:   &Result{},
	}
	w.trail.recordIfNew(start.Key(), nil)

	// 4. Run the expansion cycle to completion.
	return w.run(start)
}

// walker carries the mutable machinery of one Solve call.
type walker struct {
	opts  Options
	front frontier
	trail ledger
	res   *Result
}

// run drives the expansion cycle. The goal test is applied to the
// candidate popped from the frontier, not at generation time, so the
// initial state is itself tested before any expansion happens.
func (w *walker) run(start State) (*Result, error) {
	cand := entry{state: start, depth: 0}
	for {
		// Honor cancellation between expansions.
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		if cand.state.IsGoal() {
			w.res.Path = w.trail.reconstruct(cand.state)
			w.res.Discovered = len(w.trail)

			return w.res, nil
		}

		if err := w.expand(cand); err != nil {
			return nil, err
		}

		if w.front.empty() {
			return nil, ErrUnsolvable
		}
		cand = w.front.pop()
		w.opts.OnDequeue(cand.state, cand.depth)
	}
}

// expand generates cand's successors, records the novel ones in the
// trail with cand as their discoverer, and pushes them onto the
// frontier. Successors whose canonical form was seen before are
// discarded; successors beyond the depth limit are never admitted.
func (w *walker) expand(cand entry) error {
	if err := w.opts.OnExpand(cand.state, cand.depth); err != nil {
		return fmt.Errorf("search: expand %q: %w", cand.state.Key(), err)
	}
	w.res.Expanded++

	next := cand.depth + 1
	for _, succ := range cand.state.Successors() {
		if succ == nil {
			return fmt.Errorf("%w: yielded by %q", ErrNilSuccessor, cand.state.Key())
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if !w.trail.recordIfNew(succ.Key(), cand.state) {
			continue
		}
		w.opts.OnEnqueue(succ, next)
		w.front.push(entry{state: succ, depth: next})
	}

	return nil
}
