// Package scheduler builds the weighted landmark graph a little at a time.
//
// A build moves through four phases:
//
//	lookup -> adjacency -> distance -> done
//
// lookup indexes every claimed cell by owner; adjacency walks the same
// cells to discover bordering territory pairs; distance weighs one edge per
// invocation by walking distance; done is terminal.
//
// Each Step receives the caller-owned *State and an operation budget. One
// cell or one edge is one operation. lookup and adjacency stop exactly at
// the budget; distance handles at most one edge per Step whatever the
// budget, since a single walking-distance search can be expensive. Calling
// Step on a done State returns immediately.
//
// State holds only cursors and plain data and round-trips through JSON, so
// a host may persist it between invocations and resume with a fresh
// Scheduler built over the same territories. The lookup table is dropped
// when adjacency finishes.
//
// Running with budget 1 until done gives the same edges and weights as a
// single call with an unbounded budget.
package scheduler
