// Package queens models n-queens placement as row-by-row search: each
// move places one queen in the next empty row, so every reachable state
// is a valid partial placement and every full placement is a solution.
package queens

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/search"
)

// ErrBoardSize is returned when the requested board is smaller than 1×1.
var ErrBoardSize = errors.New("queens: board size must be positive")

// State is a partial placement: cols[r] holds the column of the queen
// in row r, rows 0..len(cols)-1 filled, the rest still empty. A State
// is immutable; placements produce fresh copies.
type State struct {
	n    int
	cols []int
}

// New returns the empty placement for an n×n board.
func New(n int) (State, error) {
	if n < 1 {
		return State{}, fmt.Errorf("%w: got %d", ErrBoardSize, n)
	}

	return State{n: n}, nil
}

// Key folds left-right mirror images into one canonical form: the
// lexicographically smaller rendering of the placement and its mirror.
// Mirroring commutes with placing a queen, so the fold loses no
// solution while pruning roughly half the tree.
func (s State) Key() string {
	plain := search.DefaultKey(s.cols)
	mirrored := make([]int, len(s.cols))
	for i, c := range s.cols {
		mirrored[i] = s.n - 1 - c
	}
	if m := search.DefaultKey(mirrored); m < plain {
		return m
	}

	return plain
}

// IsGoal reports whether every row holds a queen.
func (s State) IsGoal() bool { return len(s.cols) == s.n }

// Successors places a queen in each unattacked column of the next empty
// row, in ascending column order.
func (s State) Successors() []search.State {
	row := len(s.cols)
	if row == s.n {
		return nil
	}
	next := make([]search.State, 0, s.n)
	for col := 0; col < s.n; col++ {
		if !s.safe(row, col) {
			continue
		}
		placed := append(append(make([]int, 0, row+1), s.cols...), col)
		next = append(next, State{n: s.n, cols: placed})
	}

	return next
}

// safe reports whether a queen at (row, col) is unattacked by every
// queen already placed above it.
func (s State) safe(row, col int) bool {
	for r, c := range s.cols {
		if c == col || abs(col-c) == row-r {
			return false
		}
	}

	return true
}

// Size returns the board dimension n.
func (s State) Size() int { return s.n }

// Columns returns a copy of the placed queens' columns, row by row.
func (s State) Columns() []int { return append([]int(nil), s.cols...) }

// String renders the column of each filled row, top to bottom. Unlike
// Key, String never mirrors: it shows the placement as built.
func (s State) String() string { return search.DefaultKey(s.cols) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
