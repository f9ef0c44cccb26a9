// Package chunk implements the coordinate math of a world tiled by fixed-size
// square chunks that are stitched together at their edges.
//
// What:
//
//   - Name is a chunk identifier such as "E12N7": a horizontal direction
//     letter (E/W) with a magnitude, then a vertical letter (N/S) with a
//     magnitude. W0 sits directly west of E0 and N0 directly north of S0.
//   - Position is the signed grid form of a Name (E0 → X=0, W0 → X=-1,
//     S0 → Y=0, N0 → Y=-1), which turns seam crossing into ±1 arithmetic.
//   - WorldCoord is a local (x,y) cell inside a named chunk; its canonical
//     string form "E0N0:12,40" is the key used by every height field,
//     territory lookup and persisted scheduler state.
//   - Topology fixes the chunk side length and answers every "what is next
//     to this cell" question, including across seams.
//
// Seam crossing:
//
//	AdjacentEntry(name, x, y) is defined only for cells on the chunk edge.
//	Leaving through x == Size-1 enters the eastern neighbour at x == 0,
//	leaving through y == 0 enters the northern neighbour at y == Size-1, and
//	a corner cell yields the diagonal neighbour with both axes wrapped.
//	Interior cells and malformed names yield ok == false.
//
// Complexity:
//
//   - ParseName / Name: O(len(name)).
//   - AdjacentEntry, Step: O(1) arithmetic plus one name format.
//
// Everything here is pure: no logging, no errors, no shared state.
package chunk
