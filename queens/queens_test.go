package queens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/statespace/queens"
	"github.com/katalvlaran/statespace/search"
)

// validPlacement reports whether cols is a full non-attacking placement.
func validPlacement(cols []int) bool {
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			if cols[i] == cols[j] || abs(cols[i]-cols[j]) == j-i {
				return false
			}
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// final unwraps the last state of a solution path.
func final(res *search.Result) queens.State {
	return res.Path[len(res.Path)-1].(queens.State)
}

func TestNew_BadSize(t *testing.T) {
	_, err := queens.New(0)
	assert.ErrorIs(t, err, queens.ErrBoardSize)

	_, err = queens.New(-3)
	assert.ErrorIs(t, err, queens.ErrBoardSize)
}

func TestSolve_OneQueen(t *testing.T) {
	start, err := queens.New(1)
	assert.NoError(t, err)

	res, err := search.Solve(start)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Moves())
	assert.Equal(t, []int{0}, final(res).Columns())
}

// TestSolve_FourQueens_DepthFirst pins the deterministic dive: with
// successors in ascending column order and mirror folding at the root,
// the first full placement reached is 1,3,0,2.
func TestSolve_FourQueens_DepthFirst(t *testing.T) {
	start, err := queens.New(4)
	assert.NoError(t, err)

	res, err := search.Solve(start, search.WithDepthFirst())
	assert.NoError(t, err)
	assert.Equal(t, 4, res.Moves())
	assert.Equal(t, []int{1, 3, 0, 2}, final(res).Columns())
}

// TestSolve_FourQueens_Breadth reaches the same placement: its mirror
// folds onto it, so only one canonical solution exists on a 4×4 board.
func TestSolve_FourQueens_Breadth(t *testing.T) {
	start, err := queens.New(4)
	assert.NoError(t, err)

	res, err := search.Solve(start)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2}, final(res).Columns())
}

// TestSolve_SmallBoardsUnsolvable exhausts the 2×2 and 3×3 boards,
// which famously admit no placement.
func TestSolve_SmallBoardsUnsolvable(t *testing.T) {
	for _, n := range []int{2, 3} {
		start, err := queens.New(n)
		assert.NoError(t, err)

		res, err := search.Solve(start, search.WithDepthFirst())
		assert.Nil(t, res, "n=%d", n)
		assert.ErrorIs(t, err, search.ErrUnsolvable, "n=%d", n)
	}
}

// TestSolve_SixQueens checks a real dive: one queen gained per move and
// a valid full placement at the end.
func TestSolve_SixQueens(t *testing.T) {
	start, err := queens.New(6)
	assert.NoError(t, err)

	res, err := search.Solve(start, search.WithDepthFirst())
	assert.NoError(t, err)
	assert.Len(t, res.Path, 7)
	for i, s := range res.Path {
		assert.Len(t, s.(queens.State).Columns(), i, "step %d should hold %d queens", i, i)
	}
	assert.True(t, validPlacement(final(res).Columns()))
}

// TestKey_MirrorFold demands that a placement and its left-right mirror
// share one canonical form.
func TestKey_MirrorFold(t *testing.T) {
	start, err := queens.New(4)
	assert.NoError(t, err)

	row0 := start.Successors()
	assert.Len(t, row0, 4, "first queen may go anywhere")
	assert.Equal(t, row0[0].Key(), row0[3].Key(), "columns 0 and 3 mirror each other")
	assert.Equal(t, row0[1].Key(), row0[2].Key(), "columns 1 and 2 mirror each other")
	assert.NotEqual(t, row0[0].Key(), row0[1].Key())
}

// TestString_NeverMirrors pins the rendering split: Key may fold to the
// mirror image, String always shows the placement as built.
func TestString_NeverMirrors(t *testing.T) {
	start, err := queens.New(4)
	assert.NoError(t, err)

	right := start.Successors()[3].(queens.State)
	assert.Equal(t, []int{3}, right.Columns())
	assert.Equal(t, "[3]", right.String())
	assert.Equal(t, "[0]", right.Key(), "the fold renders the mirror")
}

func TestColumns_Copy(t *testing.T) {
	start, err := queens.New(4)
	assert.NoError(t, err)
	placed := start.Successors()[0].(queens.State)

	cols := placed.Columns()
	cols[0] = 99
	assert.Equal(t, []int{0}, placed.Columns(), "accessor must hand out a copy")
}
