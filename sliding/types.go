// Package sliding defines core types and sentinel errors for the
// sliding-tile puzzle subpackage of github.com/katalvlaran/statespace.
package sliding

import (
	"errors"
)

// Sentinel errors for board construction.
var (
	// ErrEmptyBoard indicates the input grid has no rows or no columns.
	ErrEmptyBoard = errors.New("sliding: board must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("sliding: all rows must have the same length")
	// ErrBoardSize indicates a geometry with fewer than two cells.
	ErrBoardSize = errors.New("sliding: board needs at least two cells")
	// ErrTileSet indicates the tiles are not a permutation of 0..n-1.
	ErrTileSet = errors.New("sliding: tiles must be a permutation of 0..n-1 with one blank")
)

// Board fixes the geometry of one puzzle: dimensions and precomputed
// slide offsets. It is immutable once built and shared by reference
// among every State of a solve.
type Board struct {
	rows, cols int
	// offsets list the blank's candidate moves in N, E, S, W order as
	// (Δrow, Δcol) pairs; the order fixes successor tie-breaks.
	offsets [][2]int
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (r, c) lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// index maps (r, c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (b *Board) index(r, c int) int {
	return r*b.cols + c
}

// coordinate converts a row-major index back to (r, c).
// Complexity: O(1).
func (b *Board) coordinate(idx int) (r, c int) {
	return idx / b.cols, idx % b.cols
}

// State is one arrangement of tiles on a Board: row-major values with 0
// as the blank. A State is immutable; slides produce fresh copies.
type State struct {
	b     *Board
	tiles []int
	blank int // row-major index of the blank, tracked to avoid scans
}
