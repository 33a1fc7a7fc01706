// Package search defines the state contract, tunable options, and error
// definitions for the generic state-space solver.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for solver execution.
var (
	// ErrNilStart is returned if a nil initial state is passed to Solve.
	ErrNilStart = errors.New("search: initial state is nil")

	// ErrUnsolvable is returned when the entire reachable state space was
	// exhausted without satisfying the goal test.
	ErrUnsolvable = errors.New("search: no goal state reachable from the initial state")

	// ErrNilSuccessor is returned when a Successors implementation yields
	// a nil state. A broken puzzle definition is a caller bug; the solver
	// reports it instead of exploring it.
	ErrNilSuccessor = errors.New("search: successor state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// State is the capability contract every concrete puzzle satisfies.
// A State is an immutable value: once created it is never modified, and
// Successors must not mutate its receiver.
type State interface {
	// Key returns the canonical form of the state: a deterministic, pure
	// projection used as its deduplication identity. Two states with the
	// same key are treated as the same place in the search, so Key may
	// fold symmetric states (rotations, reflections, label permutations)
	// together, but must never collide for truly different, explorable
	// states. When no folding is wanted, DefaultKey(position) is enough.
	Key() string

	// IsGoal reports whether the state satisfies the goal condition.
	// For puzzles with a plain target value this is a direct comparison
	// of the position against the goal; structural conditions ("the
	// designated piece reached the designated square") implement
	// whatever test they need.
	IsGoal() bool

	// Successors returns every state reachable by one legal move, in a
	// reproducible order. The order is significant: it fixes the
	// tie-break among equally ranked frontier insertions. A successor
	// equal (by key) to an already discovered state is permitted and
	// silently discarded.
	Successors() []State
}

// DefaultKey renders a position value in its plain printed form, the
// default canonical form for puzzles without symmetry folding. The
// rendering is injective as long as the positions one solve call can
// reach share a single concrete type.
func DefaultKey(position any) string {
	return fmt.Sprintf("%v", position)
}

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative depth limit), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve run.
type Options struct {
	// Ctx allows a caller-supplied time box; the solver itself never
	// times out. Checked once per expansion cycle.
	Ctx context.Context

	// DepthFirst switches the frontier from FIFO (breadth-first,
	// shortest path) to LIFO (depth-first, first found) discipline.
	DepthFirst bool

	// MaxDepth, if > 0, stops exploring beyond this many moves from the
	// initial state. A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnEnqueue is called when a novel state is pushed onto the
	// frontier. Receives the state and its discovery depth.
	OnEnqueue func(s State, depth int)

	// OnDequeue is called when a state is popped from the frontier to
	// become the next expansion candidate.
	OnDequeue func(s State, depth int)

	// OnExpand is called when a candidate failed the goal test and is
	// about to have its successors generated. Returning an error aborts
	// the solve and propagates that error.
	OnExpand func(s State, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - breadth-first frontier discipline
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnExpand)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthFirst: false,
		MaxDepth:   0,
		OnEnqueue:  func(State, int) {},
		OnDequeue:  func(State, int) {},
		OnExpand:   func(State, int) error { return nil },
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation or deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthFirst selects LIFO frontier discipline: the most recently
// discovered state is expanded first. Depth-first mode trades the
// shortest-path guarantee for lower memory and time on puzzles where
// every move provably reduces the remaining work.
func WithDepthFirst() Option {
	return func(o *Options) {
		o.DepthFirst = true
	}
}

// WithMaxDepth stops the search beyond the given number of moves.
//
//	d > 0: explore at most d moves from the initial state
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
//
// With a limit in place, ErrUnsolvable means "unsolvable within d moves".
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnEnqueue registers a callback to run whenever a novel state is
// pushed onto the frontier.
func WithOnEnqueue(fn func(s State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run whenever a state is popped
// from the frontier.
func WithOnDequeue(fn func(s State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnExpand registers a callback to run before a candidate's
// successors are generated; returning an error from this callback stops
// the solve. It is the natural place for a caller-imposed search budget.
func WithOnExpand(fn func(s State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a successful solve:
//   - Path: the solution states in order, initial through goal inclusive.
//   - Expanded: how many states had their successors generated.
//   - Discovered: how many distinct canonical forms entered the trail,
//     i.e. the effective size of the explored (post-folding) state space.
type Result struct {
	Path       []State
	Expanded   int
	Discovered int
}

// Moves returns the number of moves in the solution, one less than the
// number of states on the path.
func (r *Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
