// Package sliding provides the sliding-tile puzzle (the 8-puzzle and
// its rows×cols relatives) as a plug-in state space: tiles slide
// orthogonally into the single blank until they read in order.
package sliding

import (
	"math/rand"

	"github.com/katalvlaran/statespace/search"
)

// newBoard builds the shared geometry after validating dimensions.
func newBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyBoard
	}
	if rows*cols < 2 {
		return nil, ErrBoardSize
	}

	return &Board{
		rows:    rows,
		cols:    cols,
		offsets: [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	}, nil
}

// New constructs a State from an explicit arrangement given as rows of
// values, 0 marking the blank. The input is deep-copied and must be a
// rectangular permutation of 0..n-1.
// Returns ErrEmptyBoard, ErrNonRectangular, ErrBoardSize, or ErrTileSet.
// Complexity: O(rows×cols) time and memory.
func New(values [][]int) (State, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return State{}, ErrEmptyBoard
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return State{}, ErrNonRectangular
		}
	}
	b, err := newBoard(rows, cols)
	if err != nil {
		return State{}, err
	}

	// Flatten with a deep copy and verify the permutation.
	n := rows * cols
	tiles := make([]int, 0, n)
	for _, row := range values {
		tiles = append(tiles, row...)
	}
	blank := -1
	seen := make([]bool, n)
	for i, v := range tiles {
		if v < 0 || v >= n || seen[v] {
			return State{}, ErrTileSet
		}
		seen[v] = true
		if v == 0 {
			blank = i
		}
	}

	return State{b: b, tiles: tiles, blank: blank}, nil
}

// Solved returns the goal arrangement for a rows×cols board: tiles in
// ascending order with the blank in the last cell.
func Solved(rows, cols int) (State, error) {
	b, err := newBoard(rows, cols)
	if err != nil {
		return State{}, err
	}
	n := rows * cols
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	// tiles[n-1] stays 0: the blank

	return State{b: b, tiles: tiles, blank: n - 1}, nil
}

// Key renders the row-major tile vector; arrangements are their own
// canonical form, no symmetry folding.
func (s State) Key() string { return search.DefaultKey(s.tiles) }

// IsGoal reports whether the tiles read 1..n-1 with the blank last.
func (s State) IsGoal() bool {
	last := len(s.tiles) - 1
	for i := 0; i < last; i++ {
		if s.tiles[i] != i+1 {
			return false
		}
	}

	return s.tiles[last] == 0
}

// Successors slides each orthogonal neighbor tile into the blank, in
// N, E, S, W order of the neighbor relative to the blank.
func (s State) Successors() []search.State {
	next := make([]search.State, 0, len(s.b.offsets))
	br, bc := s.b.coordinate(s.blank)
	for _, d := range s.b.offsets {
		nr, nc := br+d[0], bc+d[1]
		if !s.b.InBounds(nr, nc) {
			continue
		}
		next = append(next, s.slide(s.b.index(nr, nc)))
	}

	return next
}

// slide returns a copy of s with the tile at idx moved into the blank.
func (s State) slide(idx int) State {
	tiles := append([]int(nil), s.tiles...)
	tiles[s.blank], tiles[idx] = tiles[idx], 0

	return State{b: s.b, tiles: tiles, blank: idx}
}

// Scramble walks the given number of random slides away from s and
// returns where it ends up. Every slide is reversible, so the result is
// always solvable and its optimal distance from s is at most moves.
// Panics on a nil rng: seeding is the caller's decision.
func (s State) Scramble(moves int, rng *rand.Rand) State {
	if rng == nil {
		panic("sliding: Scramble(nil rng)")
	}
	cur := s
	for i := 0; i < moves; i++ {
		succ := cur.Successors()
		cur = succ[rng.Intn(len(succ))].(State)
	}

	return cur
}

// Tiles returns a copy of the arrangement as rows of values.
func (s State) Tiles() [][]int {
	out := make([][]int, s.b.rows)
	for r := 0; r < s.b.rows; r++ {
		out[r] = append([]int(nil), s.tiles[r*s.b.cols:(r+1)*s.b.cols]...)
	}

	return out
}
