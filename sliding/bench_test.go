package sliding_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/sliding"
)

// BenchmarkSolve_Scrambled8Puzzle measures a breadth-first solve of a
// 3×3 board scrambled twelve slides out (a mid-difficulty instance).
func BenchmarkSolve_Scrambled8Puzzle(b *testing.B) {
	goal, err := sliding.Solved(3, 3)
	if err != nil {
		b.Fatal(err)
	}
	start := goal.Scramble(12, rand.New(rand.NewSource(42)))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = search.Solve(start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_ExhaustOddHalf measures the worst case: proving a 2×3
// board unsolvable by exhausting all 360 reachable arrangements.
func BenchmarkSolve_ExhaustOddHalf(b *testing.B) {
	start, err := sliding.New([][]int{
		{2, 1, 3},
		{4, 5, 0},
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(start)
	}
}
