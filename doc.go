// Package statespace is your in-memory playground for modeling, solving,
// and inspecting reachability puzzles — one uninformed search engine, many
// tiny worlds.
//
// 🚀 What is statespace?
//
//	A modern, deterministic, pluggable solver library that brings together:
//		• Search engine: breadth-first (shortest path) & depth-first (first found)
//		• State contract: Key (canonical form), IsGoal, Successors — three methods, any puzzle
//		• Trail ledger: first-discoverer links, free path reconstruction
//		• Classic worlds: water jugs, sliding tiles, n-queens, river crossing
//		• Observation hooks: OnEnqueue, OnDequeue, OnExpand
//
// ✨ Why choose statespace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic runs, duplicate folding, honest errors
//   - Pure engine – puzzles know nothing about frontiers, the engine knows nothing about jugs
//   - Extensible – add custom hooks (OnExpand, OnEnqueue…) for custom logic
//
// Under the hood, everything is organized under focused subpackages:
//
//	search/   — the engine: Solve, State, frontier disciplines, options & hooks
//	jugs/     — water-measuring puzzle (pour-only moves between capped jugs)
//	sliding/  — sliding-tile puzzle on an arbitrary rows×cols board
//	queens/   — n-queens placement as row-by-row search
//	crossing/ — wolf–goat–cabbage river crossing
//	cmd/solver/ — command-line front end over all of the above
//
// Quick ASCII example:
//
//	    (3,5,8) ──pour──▶ (0,5,8)? no: jug 2 full
//	       │
//	       └──pour──▶ (3,0,8)? no — but (0,4,4)… eight states away. Solve finds them.
//
//	three jugs, one target reading, breadth-first gives the fewest pours.
//
// Next up: iterative deepening, weighted moves, parallel frontier sharding.
// Dive into README.md for full examples, a feature matrix, and our roadmap.
//
//	go get github.com/katalvlaran/statespace
package statespace
