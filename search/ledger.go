package search

// ledger maps each discovered canonical form to the state that first
// generated it (its discoverer). The initial state is recorded with a
// nil discoverer, which doubles as the terminator when walking a path
// backwards. One structure serves two roles: membership answers "seen
// before?", values answer "how did we get here?".
type ledger map[string]State

// recordIfNew inserts canonical → discoverer if canonical is absent and
// reports whether the mapping was novel. An existing entry is never
// overwritten: the first discovery of a canonical form permanently owns
// its predecessor link.
func (l ledger) recordIfNew(canonical string, discoverer State) bool {
	if _, seen := l[canonical]; seen {
		return false
	}
	l[canonical] = discoverer

	return true
}

// reconstruct walks discoverer links from goal back to the nil sentinel,
// then reverses in place to yield the path in initial → goal order.
func (l ledger) reconstruct(goal State) []State {
	path := make([]State, 0, 8)
	for cur := goal; cur != nil; cur = l[cur.Key()] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
