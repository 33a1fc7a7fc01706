package jugs_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/jugs"
	"github.com/katalvlaran/statespace/search"
)

// ExampleClassic solves the textbook instance: three jugs of capacity
// 3, 5, and 8, the large one full, and the task of splitting its eight
// units 4/4. Breadth-first search finds the unique 7-pour optimum.
func ExampleClassic() {
	res, err := search.Solve(jugs.Classic())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range res.Path {
		fmt.Println(s.Key())
	}
	fmt.Println("pours:", res.Moves())
	// Output:
	// [0 0 8]
	// [0 5 3]
	// [3 2 3]
	// [0 2 6]
	// [2 0 6]
	// [2 5 1]
	// [3 4 1]
	// [0 4 4]
	// pours: 7
}

// ExampleNew builds a custom instance and shows an unsolvable verdict:
// with all capacities even and an even start, odd readings are out of
// reach, so the solver exhausts the space and says so.
func ExampleNew() {
	p, err := jugs.New([]int{2, 4, 8}, []int{0, 3, 5})
	if err != nil {
		fmt.Println("bad puzzle:", err)
		return
	}
	start, err := p.Start([]int{0, 0, 8})
	if err != nil {
		fmt.Println("bad reading:", err)
		return
	}

	_, err = search.Solve(start)
	fmt.Println("verdict:", err)
	// Output:
	// verdict: search: no goal state reachable from the initial state
}
