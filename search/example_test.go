package search_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/search"
)

// ladder is a position on a staircase of five rungs (0..4); each move
// climbs one or three rungs, and the top rung is the goal.
type ladder struct{ pos int }

func (l ladder) Key() string  { return search.DefaultKey(l.pos) }
func (l ladder) IsGoal() bool { return l.pos == 4 }

func (l ladder) Successors() []search.State {
	next := make([]search.State, 0, 2)
	for _, step := range []int{1, 3} {
		if p := l.pos + step; p <= 4 {
			next = append(next, ladder{pos: p})
		}
	}
	return next
}

// ExampleSolve demonstrates the default breadth-first solve on the
// staircase puzzle: the two-move route 0→1→4 beats any three-move climb.
func ExampleSolve() {
	res, err := search.Solve(ladder{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range res.Path {
		fmt.Println(s.Key())
	}
	fmt.Println("moves:", res.Moves())
	// Output:
	// 0
	// 1
	// 4
	// moves: 2
}

// ExampleSolve_depthFirst runs the same staircase under LIFO discipline:
// the newest discovery is expanded first, so the solve dives along the
// three-rung jump and reaches the top through 3 instead of 1.
func ExampleSolve_depthFirst() {
	res, err := search.Solve(ladder{}, search.WithDepthFirst())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range res.Path {
		fmt.Println(s.Key())
	}
	// Output:
	// 0
	// 3
	// 4
}

// ExampleSolve_maxDepth shows a depth limit turning a solvable puzzle
// into an unsolvable one: the top rung is two moves away at best, so a
// one-move budget exhausts the space.
func ExampleSolve_maxDepth() {
	_, err := search.Solve(ladder{}, search.WithMaxDepth(1))
	fmt.Println("error:", err)
	// Output:
	// error: search: no goal state reachable from the initial state
}
