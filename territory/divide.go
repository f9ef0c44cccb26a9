package territory

import (
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/peak"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// queueItem is one frontier cell and the territory pushing it.
type queueItem struct {
	cell    chunk.WorldCoord
	owner   int
	foreign int // steps taken outside the owner's home chunk
}

// divider holds the mutable state of one flood fill.
type divider struct {
	q        terrain.Query
	opts     Options
	out      Map
	eligible map[chunk.Name]bool
	entered  map[chunk.Name]bool
	claimed  map[chunk.WorldCoord]bool
	queue    []queueItem
}

// Divide assigns every reachable walkable cell of the eligible chunks to
// exactly one landmark. Landmarks whose center is an obstacle, already
// claimed or outside the eligible chunks get an empty territory.
func Divide(landmarks []peak.Landmark, q terrain.Query, opts ...Option) (Map, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(landmarks) == 0 {
		return Map{}, nil
	}

	seeds := make([]peak.Landmark, len(landmarks))
	copy(seeds, landmarks)
	sort.SliceStable(seeds, func(i, j int) bool {
		return seeds[i].Height > seeds[j].Height
	})

	d := &divider{
		q:        q,
		opts:     o,
		out:      make(Map, len(seeds)),
		eligible: o.Whitelist,
		entered:  make(map[chunk.Name]bool),
		claimed:  make(map[chunk.WorldCoord]bool),
	}
	if d.eligible == nil {
		d.eligible = make(map[chunk.Name]bool, len(seeds))
		for _, lm := range seeds {
			d.eligible[lm.Center.Chunk] = true
		}
	}

	for i, lm := range seeds {
		d.out[i] = Territory{Landmark: lm.ID(), Center: lm.Center, Height: lm.Height}
		if !d.eligible[lm.Center.Chunk] {
			continue
		}
		d.entered[lm.Center.Chunk] = true
		d.claim(queueItem{cell: lm.Center, owner: i})
	}
	d.loop()
	return d.out, nil
}

// claim takes the cell for its owner unless it is taken or an obstacle.
func (d *divider) claim(it queueItem) {
	if d.claimed[it.cell] || terrain.At(d.q, it.cell) == d.opts.Obstacle {
		return
	}
	d.claimed[it.cell] = true
	d.out[it.owner].Cells = append(d.out[it.owner].Cells, it.cell)
	d.queue = append(d.queue, it)
}

func (d *divider) loop() {
	topo := d.opts.Topology
	for qi := 0; qi < len(d.queue); qi++ {
		it := d.queue[qi]
		home := d.out[it.owner].Center.Chunk
		for _, off := range chunk.Neighbors4 {
			v, ok := topo.Step(it.cell, off[0], off[1])
			if !ok || d.claimed[v] {
				continue
			}
			if v.Chunk != it.cell.Chunk && !d.enter(v.Chunk) {
				continue
			}
			foreign := 0
			if v.Chunk != home {
				foreign = it.foreign + 1
				if d.opts.ForeignDepth > 0 && foreign > d.opts.ForeignDepth {
					continue
				}
			}
			d.claim(queueItem{cell: v, owner: it.owner, foreign: foreign})
		}
	}
	d.queue = nil
}

// enter reports whether the flood may cross into name.
func (d *divider) enter(name chunk.Name) bool {
	if !d.eligible[name] {
		return false
	}
	if d.entered[name] {
		return true
	}
	if d.opts.MaxChunks > 0 && len(d.entered) >= d.opts.MaxChunks {
		return false
	}
	d.entered[name] = true
	return true
}
