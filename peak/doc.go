// Package peak reduces a height field to a sparse set of landmarks.
//
// What
//
//   - Find groups every walkable cell with height > 0 into plateaus: maximal
//     4-connected sets of cells sharing exactly the same height, possibly
//     spanning chunk seams. Each plateau becomes one Landmark whose center
//     is the rounded centroid of the plateau cells lying in the chunk that
//     holds most of them.
//   - Filter keeps a well-spaced subset: landmarks are taken tallest first,
//     and each accepted landmark excludes every cell within
//     floor(height × ExclusionMultiplier) Chebyshev distance of its center
//     (capped by MaxExclusionRadius). A later landmark whose center is
//     excluded is dropped. Zones cross seams using the Topology option, so
//     Filter must be given the chunk size the field was computed with.
//
// Guarantees
//
//   - Find returns landmarks in non-increasing height order.
//   - Filter never drops the tallest landmark of its input, even when it is
//     below MinHeight.
//
// Ties
//
//	Cells of equal height are visited in the field's initialisation order
//	(see heightfield.Field.Cells), and equal-height landmarks keep their
//	input order through Filter. No secondary key such as the landmark ID
//	is introduced.
//
// Complexity
//
//   - Find:   O(N log N) for N covered cells.
//   - Filter: O(L log L + A·R²) for L landmarks, A accepted, radius R.
package peak
