// Package network turns a territory map into a weighted landmark graph.
//
// Adjacency inspects every claimed cell's 4-connected neighbours, crossing
// chunk seams, and records an undirected Edge whenever the neighbour belongs
// to a different landmark. Territories that never touch produce no edge,
// however close their centers are.
//
// Walker measures the 8-connected walking distance between two landmark
// centers with a breadth-first search that treats obstacles as impassable
// and gives up beyond MaxDistance, reporting Unreachable.
//
// Graph holds the weighted result and answers shortest-route queries with
// Dijkstra over edge weights (lazy decrease-key min-heap). Unreachable
// edges are never traversed.
//
// Complexity:
//
//   - Adjacency: O(N) for N claimed cells.
//   - Walker.Distance: O(D²) cells for cap D.
//   - Graph.Route: O((V + E) log V).
//
// Errors:
//
//   - ErrOptionViolation for invalid options.
//   - ErrNodeNotFound, ErrNoRoute from Graph.Route.
//
// Pure and non-blocking: nothing in this package logs or performs I/O.
package network
