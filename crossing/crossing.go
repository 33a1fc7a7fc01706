// Package crossing models the wolf–goat–cabbage river puzzle: a farmer
// ferries one passenger at a time, and nothing may be eaten while the
// farmer is on the other bank.
package crossing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/search"
)

// State places each traveler on a bank: false is the near bank, true
// the far one. The zero value is the starting position, everyone on
// the near bank; Start names it for readability.
type State struct {
	wolf, goat, cabbage, farmer bool
}

// Start returns the initial position: the whole party on the near bank.
func Start() State { return State{} }

// cargo identifiers for the ferry moves, in enumeration order.
const (
	nothing = iota
	wolf
	goat
	cabbage
)

// Key packs the four positions into four bank letters, near 'n' or far
// 'f', in wolf, goat, cabbage, farmer order. Sixteen raw combinations
// exist; only the ten safe ones ever appear.
func (s State) Key() string {
	k := [4]byte{'n', 'n', 'n', 'n'}
	for i, far := range []bool{s.wolf, s.goat, s.cabbage, s.farmer} {
		if far {
			k[i] = 'f'
		}
	}

	return string(k[:])
}

// IsGoal reports whether the whole party reached the far bank.
func (s State) IsGoal() bool {
	return s.wolf && s.goat && s.cabbage && s.farmer
}

// Successors enumerates the farmer's crossings in a fixed order: alone,
// then ferrying the wolf, the goat, the cabbage. A passenger must share
// the farmer's bank, and crossings that leave prey with predator are
// not moves at all.
func (s State) Successors() []search.State {
	next := make([]search.State, 0, 4)
	for c := nothing; c <= cabbage; c++ {
		n := s
		n.farmer = !s.farmer
		switch c {
		case wolf:
			if s.wolf != s.farmer {
				continue
			}
			n.wolf = n.farmer
		case goat:
			if s.goat != s.farmer {
				continue
			}
			n.goat = n.farmer
		case cabbage:
			if s.cabbage != s.farmer {
				continue
			}
			n.cabbage = n.farmer
		}
		if !n.safe() {
			continue
		}
		next = append(next, n)
	}

	return next
}

// safe reports whether the bank without the farmer holds no predator
// next to its prey.
func (s State) safe() bool {
	if s.wolf == s.goat && s.goat != s.farmer {
		return false
	}
	if s.goat == s.cabbage && s.goat != s.farmer {
		return false
	}

	return true
}

// String draws both banks, farmer included.
func (s State) String() string {
	names := []string{"wolf", "goat", "cabbage", "farmer"}
	banks := []bool{s.wolf, s.goat, s.cabbage, s.farmer}
	var near, far []string
	for i, onFar := range banks {
		if onFar {
			far = append(far, names[i])
		} else {
			near = append(near, names[i])
		}
	}

	return fmt.Sprintf("near[%s] far[%s]", strings.Join(near, " "), strings.Join(far, " "))
}
