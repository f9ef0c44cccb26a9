package peak

import (
	"math"
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/heightfield"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// Find extracts one Landmark per plateau of f, tallest first.
// Plateaus cross chunk seams wherever f covers both sides.
func Find(f *heightfield.Field, q terrain.Query, opts ...Option) ([]Landmark, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	var cells []chunk.WorldCoord
	for _, c := range f.Cells() {
		if f.Height(c) > 0 && terrain.At(q, c) != o.Obstacle {
			cells = append(cells, c)
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return f.Height(cells[i]) > f.Height(cells[j])
	})

	topo := f.Topology()
	assigned := make(map[chunk.WorldCoord]bool, len(cells))
	var out []Landmark
	for _, start := range cells {
		if assigned[start] {
			continue
		}
		h := f.Height(start)
		tiles := plateau(f, q, o.Obstacle, topo, start, h, assigned)
		out = append(out, Landmark{
			Tiles:  tiles,
			Center: centroid(topo, tiles),
			Height: h,
		})
	}
	return out, nil
}

// plateau flood-fills the 4-connected same-height region around start.
func plateau(f *heightfield.Field, q terrain.Query, obstacle terrain.Terrain, topo chunk.Topology,
	start chunk.WorldCoord, h int, assigned map[chunk.WorldCoord]bool) []chunk.WorldCoord {
	assigned[start] = true
	tiles := []chunk.WorldCoord{start}
	for qi := 0; qi < len(tiles); qi++ {
		u := tiles[qi]
		for _, d := range chunk.Neighbors4 {
			v, ok := topo.Step(u, d[0], d[1])
			if !ok || assigned[v] {
				continue
			}
			if hv, covered := f.At(v); !covered || hv != h {
				continue
			}
			if terrain.At(q, v) == obstacle {
				continue
			}
			assigned[v] = true
			tiles = append(tiles, v)
		}
	}
	return tiles
}

// centroid averages the tiles that lie in the plateau's majority chunk.
// Ties between chunks go to the chunk met first.
func centroid(topo chunk.Topology, tiles []chunk.WorldCoord) chunk.WorldCoord {
	counts := make(map[chunk.Name]int)
	var order []chunk.Name
	for _, t := range tiles {
		if counts[t.Chunk] == 0 {
			order = append(order, t.Chunk)
		}
		counts[t.Chunk]++
	}
	major := order[0]
	for _, n := range order[1:] {
		if counts[n] > counts[major] {
			major = n
		}
	}

	var sx, sy, n float64
	for _, t := range tiles {
		if t.Chunk != major {
			continue
		}
		sx += float64(t.X)
		sy += float64(t.Y)
		n++
	}
	x, y := topo.Clamp(int(math.Round(sx/n)), int(math.Round(sy/n)))
	return chunk.At(major, x, y)
}
