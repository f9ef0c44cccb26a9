// Package territory partitions walkable cells among landmarks with a fair,
// simultaneous flood fill.
//
// What
//
//   - One queue entry is seeded per landmark at its center, tallest first;
//     equal heights keep their input order.
//   - A single FIFO queue expands 4-connected. The first entry to reach a
//     free, non-obstacle cell claims it for its landmark for good.
//   - A move across a chunk seam is allowed only into an eligible chunk.
//     Eligible chunks default to those holding at least one landmark center;
//     an explicit whitelist replaces that default. A landmark whose center
//     lies outside the eligible chunks is not seeded and keeps an empty
//     territory.
//   - The number of distinct chunks entered is capped by MaxChunks when set.
//
// Policy point
//
//	Eligibility is decided per chunk, so a landmark near an edge will flood
//	a whitelisted neighbour that has no landmark of its own as deep as the
//	neighbour goes. WithForeignDepth(n) bounds that: a claim may extend at
//	most n steps outside the claiming landmark's home chunk. The default, 0,
//	leaves the depth unbounded and reproduces the plain chunk-level rule.
//
// Guarantees
//
//   - No cell belongs to two territories; obstacle cells belong to none.
//   - No cell outside the eligible chunks is ever claimed.
//   - Every claimed cell is 4-connected to its landmark center through cells
//     of the same territory.
//   - With no chunk budget and no foreign-depth bound, every non-obstacle
//     cell reachable from some center through eligible chunks is claimed.
//
// Complexity: O(N) time and memory for N claimed cells.
package territory
