// Package darkphoenix finds landmarks in a chunked grid world and links them
// into a weighted territory graph.
//
// What does it do?
//
//	Given a terrain lookup over square chunks named like "E12N7", it
//		• scores every walkable cell by its distance to the nearest obstacle
//		• picks sparse, well-spaced peaks of that score as landmarks
//		• splits walkable cells among landmarks with a fair flood fill
//		• links territories that touch and weighs each link by walking distance
//
//	All traversals cross chunk seams transparently and are deterministic.
//	The graph step runs under an operation budget and can be suspended and
//	resumed from plain, serialisable state.
//
// Layout:
//
//	chunk/         chunk names, local/world coordinates, seam crossing
//	terrain/       terrain classes, Query interface, in-memory maps, noise worlds
//	heightfield/   8-connected multi-chunk distance transform
//	peak/          plateau extraction (Find) and greedy spacing (Filter)
//	territory/     simultaneous 4-connected flood fill with chunk eligibility
//	network/       adjacency, walking distance, weighted graph and routes
//	scheduler/     budgeted lookup → adjacency → distance → done state machine
//	pipeline/      one call from terrain to a ready scheduler
//	config/        YAML settings checked against an embedded JSON Schema
//	store/         SQLite persistence of builds, states and results
//	cmd/landmarks  command-line driver
//
// Quick ASCII example (one 10×10 chunk, border walls):
//
//	##########
//	#........#
//	#........#
//	#........#
//	#...LL...#     the 2×2 core has height 4; its centroid (5,5)
//	#...LL...#     becomes the only landmark and owns all 64
//	#........#     interior cells
//	#........#
//	#........#
//	##########
package darkphoenix
