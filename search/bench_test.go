package search_test

import (
	"testing"

	"github.com/katalvlaran/statespace/search"
)

// cell is a position on an M×M lattice; moves go right or down, the
// far corner is the goal. Every interior cell is reachable along many
// routes, which stresses the canonical-form deduplication.
type cell struct {
	r, c int
	m    int
}

func (x cell) Key() string  { return search.DefaultKey([2]int{x.r, x.c}) }
func (x cell) IsGoal() bool { return x.r == x.m-1 && x.c == x.m-1 }

func (x cell) Successors() []search.State {
	next := make([]search.State, 0, 2)
	if x.r+1 < x.m {
		next = append(next, cell{r: x.r + 1, c: x.c, m: x.m})
	}
	if x.c+1 < x.m {
		next = append(next, cell{r: x.r, c: x.c + 1, m: x.m})
	}
	return next
}

// BenchmarkSolve_Chain measures a breadth-first solve along a linear
// chain of N+1 states with a single successor each.
func BenchmarkSolve_Chain(b *testing.B) {
	const N = 10000
	start := hop{target: N, limit: N, steps: []int{1}}

	b.ReportAllocs()
	b.SetBytes(int64(N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(start)
	}
}

// BenchmarkSolve_Lattice measures a breadth-first solve across an M×M
// lattice (M² states, two successors per state, heavy deduplication).
func BenchmarkSolve_Lattice(b *testing.B) {
	const M = 100
	start := cell{m: M}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(start)
	}
}

// BenchmarkSolve_LatticeDepthFirst runs the same lattice under LIFO
// discipline, where the dive reaches the far corner without flooding
// the whole space first.
func BenchmarkSolve_LatticeDepthFirst(b *testing.B) {
	const M = 100
	start := cell{m: M}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(start, search.WithDepthFirst())
	}
}

// BenchmarkSolve_HookOverhead compares a solve with and without an
// expensive OnExpand hook.
func BenchmarkSolve_HookOverhead(b *testing.B) {
	const N = 1000
	start := hop{target: N, limit: N, steps: []int{1}}

	// No-op hook variant
	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(N + 1))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = search.Solve(start)
		}
	})

	// CPU-intensive OnExpand hook variant
	b.Run("HeavyExpandHook", func(b *testing.B) {
		heavy := func(_ search.State, _ int) error {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum

			return nil
		}

		b.ReportAllocs()
		b.SetBytes(int64(N + 1))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = search.Solve(start, search.WithOnExpand(heavy))
		}
	})
}
