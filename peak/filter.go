package peak

import (
	"fmt"
	"math"
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// Filter greedily selects a sparse, well-spaced subset of landmarks and
// returns it in acceptance order.
//
// Exclusion zones are laid out with the Topology option, not with the field
// the landmarks came from; pass the same WithTopology given to the distance
// transform. A center outside that topology's chunk bounds is reported as
// ErrOptionViolation.
func Filter(landmarks []Landmark, opts ...Option) ([]Landmark, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	if len(landmarks) == 0 {
		return nil, nil
	}
	for _, lm := range landmarks {
		if !o.Topology.InBounds(lm.Center.X, lm.Center.Y) {
			return nil, fmt.Errorf("%w: center %s outside %d-cell chunks", ErrOptionViolation, lm.Center, o.Topology.Size)
		}
	}

	sorted := make([]Landmark, len(landmarks))
	copy(sorted, landmarks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Height > sorted[j].Height
	})

	excluded := make(map[chunk.WorldCoord]bool)
	var accepted []Landmark
	for i, lm := range sorted {
		if o.MaxPeaks > 0 && len(accepted) >= o.MaxPeaks {
			break
		}
		if i > 0 {
			if lm.Height < o.MinHeight || excluded[lm.Center] {
				continue
			}
		}
		accepted = append(accepted, lm)
		exclude(o, lm, excluded)
	}
	return accepted, nil
}

// exclude marks the Chebyshev square around lm's center.
func exclude(o Options, lm Landmark, excluded map[chunk.WorldCoord]bool) {
	r := int(math.Floor(float64(lm.Height) * o.ExclusionMultiplier))
	if r > o.MaxExclusionRadius {
		r = o.MaxExclusionRadius
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if c, ok := o.Topology.Offset(lm.Center, dx, dy); ok {
				excluded[c] = true
			}
		}
	}
}
