// Package heightfield computes a distance-from-obstacle field over one or
// more chunks.
//
// What
//
//   - Every cell of every starting chunk is initialised: obstacle cells get
//     height 0 and seed a FIFO queue, all others start unreached.
//   - A multi-source breadth-first search expands in eight directions; a
//     diagonal move costs one step, so a cell's height is its Chebyshev-style
//     hop count to the nearest obstacle.
//   - When the wave crosses a chunk edge it continues into the neighbour
//     (see chunk.Topology.Step). Neighbours that were not among the starting
//     chunks are initialised lazily, but only while the chunk-count budget
//     allows and only if they are on the whitelist (when one is given).
//   - Cells the wave never reaches (pockets with no obstacle anywhere in
//     reach) collapse to height 0. No infinity ever leaves this package.
//
// Determinism
//
//	Field.Cells returns cells in initialisation order: chunks in admission
//	order (starting chunks first, as given), row-major inside each chunk.
//	Peak finding breaks height ties by this order.
//
// Complexity
//
//   - Time:   O(C·S²·8) for C admitted chunks of side S.
//   - Memory: O(C·S²).
//
// Options
//
//   - WithTopology(t):      chunk side length (default 50).
//   - WithObstacle(class):  terrain class that counts as obstacle (default Wall).
//   - WithMaxChunks(n):     chunk-count budget, n ≥ 0; 0 means "only the
//     starting chunks".
//   - WithWhitelist(...):   lazily admitted chunks must be listed.
//
// Errors
//
//   - ErrOptionViolation for a negative budget or an invalid topology.
package heightfield
