// Package jugs models the classic water-measuring puzzle as a
// searchable state space.
package jugs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/search"
)

// Sentinel errors for puzzle construction.
var (
	// ErrNoJugs is returned when the capacity list is empty.
	ErrNoJugs = errors.New("jugs: at least one jug is required")

	// ErrCapacity is returned when a jug capacity is zero or negative.
	ErrCapacity = errors.New("jugs: jug capacity must be positive")

	// ErrDimension is returned when a reading has a different length
	// than the capacity list.
	ErrDimension = errors.New("jugs: reading length must match the number of jugs")

	// ErrOverflow is returned when a reading holds a negative amount or
	// more than the jug's capacity.
	ErrOverflow = errors.New("jugs: reading outside jug capacity")
)

// Puzzle fixes one instance of the game: jug capacities and the goal
// reading. Every state of a solve shares the same Puzzle by reference;
// only the amounts vary.
type Puzzle struct {
	caps []int
	goal []int
}

// New builds a Puzzle from jug capacities and a goal reading. The
// inputs are copied, so the caller may reuse its slices. Construction
// validates shape only; whether the goal is reachable is the solver's
// verdict, not a constructor concern.
func New(caps, goal []int) (*Puzzle, error) {
	if len(caps) == 0 {
		return nil, ErrNoJugs
	}
	for i, c := range caps {
		if c <= 0 {
			return nil, fmt.Errorf("%w: jug %d has capacity %d", ErrCapacity, i, c)
		}
	}

	p := &Puzzle{caps: clone(caps)}
	var err error
	if p.goal, err = p.checked(goal); err != nil {
		return nil, err
	}

	return p, nil
}

// Start returns the initial search state holding the given amounts.
func (p *Puzzle) Start(amounts []int) (State, error) {
	a, err := p.checked(amounts)
	if err != nil {
		return State{}, err
	}

	return State{p: p, amounts: a}, nil
}

// Capacities returns a copy of the jug capacities.
func (p *Puzzle) Capacities() []int { return clone(p.caps) }

// Goal returns a copy of the goal reading.
func (p *Puzzle) Goal() []int { return clone(p.goal) }

// checked validates a reading against the puzzle shape and returns a
// private copy of it.
func (p *Puzzle) checked(reading []int) ([]int, error) {
	if len(reading) != len(p.caps) {
		return nil, fmt.Errorf("%w: got %d values for %d jugs", ErrDimension, len(reading), len(p.caps))
	}
	for i, v := range reading {
		if v < 0 || v > p.caps[i] {
			return nil, fmt.Errorf("%w: jug %d holds %d of %d", ErrOverflow, i, v, p.caps[i])
		}
	}

	return clone(reading), nil
}

// Classic returns the textbook instance: jugs of capacity 3, 5, and 8,
// the large jug full, and the task of splitting its eight units 4/4
// between the two larger jugs. Breadth-first solves it in seven pours.
func Classic() State {
	p := &Puzzle{caps: []int{3, 5, 8}, goal: []int{0, 4, 4}}

	return State{p: p, amounts: []int{0, 0, 8}}
}

// State is one reading of every jug. A State is immutable: pours
// produce fresh copies and never touch the receiver.
type State struct {
	p       *Puzzle
	amounts []int
}

// Key renders the amounts vector; two states with equal readings are
// the same place in the search regardless of pour history.
func (s State) Key() string { return search.DefaultKey(s.amounts) }

// IsGoal reports whether every jug matches the goal reading.
func (s State) IsGoal() bool {
	for i, v := range s.amounts {
		if v != s.p.goal[i] {
			return false
		}
	}

	return true
}

// Successors enumerates every productive pour in ascending (src, dst)
// index order. A pour moves water until the source empties or the
// destination fills, whichever comes first; pours that would move
// nothing are not moves.
func (s State) Successors() []search.State {
	n := len(s.amounts)
	next := make([]search.State, 0, n*(n-1))
	for src := 0; src < n; src++ {
		for dst := 0; dst < n; dst++ {
			if src == dst {
				continue
			}
			qty := s.amounts[src]
			if room := s.p.caps[dst] - s.amounts[dst]; room < qty {
				qty = room
			}
			if qty == 0 {
				continue
			}
			poured := clone(s.amounts)
			poured[src] -= qty
			poured[dst] += qty
			next = append(next, State{p: s.p, amounts: poured})
		}
	}

	return next
}

// Amounts returns a copy of the reading.
func (s State) Amounts() []int { return clone(s.amounts) }

// clone copies an int slice.
func clone(v []int) []int { return append([]int(nil), v...) }
