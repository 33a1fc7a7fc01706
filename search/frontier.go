package search

// entry pairs a discovered state with its depth: moves from the initial
// state along the discovery path.
type entry struct {
	state State
	depth int
}

// frontier is the ordered working set of discovered-but-unexpanded
// states. Pushes always append; pops take the oldest entry (FIFO,
// breadth-first) or the newest (LIFO, depth-first). Duplicate admission
// is not its job: only states the trail accepted are ever pushed.
type frontier struct {
	items []entry
	lifo  bool
}

// push appends e to the frontier.
func (f *frontier) push(e entry) {
	f.items = append(f.items, e)
}

// empty reports whether the frontier has no entries left.
func (f *frontier) empty() bool {
	return len(f.items) == 0
}

// pop removes and returns the next expansion candidate according to the
// configured discipline. Callers must check empty() first.
func (f *frontier) pop() entry {
	if f.lifo {
		last := len(f.items) - 1
		e := f.items[last]
		f.items = f.items[:last]

		return e
	}

	e := f.items[0]
	f.items = f.items[1:]

	return e
}
