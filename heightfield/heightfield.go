package heightfield

import (
	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// unreached marks a cell the wave has not touched yet.
const unreached = -1

// walker holds the mutable state of one transform.
type walker struct {
	q        terrain.Query
	opts     Options
	field    *Field
	queue    []chunk.WorldCoord
	admitted map[chunk.Name]bool
	limit    int
}

// Compute runs the distance transform over starts, expanding into
// neighbouring chunks as the options allow. Malformed or duplicate starting
// names are skipped; no starts yields an empty field.
func Compute(q terrain.Query, starts []chunk.Name, opts ...Option) (*Field, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		q:    q,
		opts: o,
		field: &Field{
			topo:   o.Topology,
			height: make(map[chunk.WorldCoord]int),
		},
		admitted: make(map[chunk.Name]bool, len(starts)),
	}
	for _, name := range starts {
		if !name.Valid() || w.admitted[name] {
			continue
		}
		w.initChunk(name)
	}
	w.limit = o.MaxChunks
	if w.limit == 0 {
		w.limit = len(w.admitted)
	}

	w.loop()
	w.finish()
	return w.field, nil
}

// initChunk records every cell of name and enqueues its obstacles.
func (w *walker) initChunk(name chunk.Name) {
	w.admitted[name] = true
	w.field.chunks = append(w.field.chunks, name)
	size := w.opts.Topology.Size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := chunk.At(name, x, y)
			w.field.cells = append(w.field.cells, c)
			if w.q.Terrain(name, x, y) == w.opts.Obstacle {
				w.field.height[c] = 0
				w.queue = append(w.queue, c)
				continue
			}
			w.field.height[c] = unreached
		}
	}
}

// admit decides whether the wave may enter name, initialising it if so.
func (w *walker) admit(name chunk.Name) bool {
	if w.admitted[name] {
		return true
	}
	if len(w.admitted) >= w.limit {
		return false
	}
	if w.opts.Whitelist != nil && !w.opts.Whitelist[name] {
		return false
	}
	w.initChunk(name)
	return true
}

// loop drains the FIFO queue. Obstacles of lazily admitted chunks join the
// queue late, so a cell may be lowered after its first assignment; the
// relaxation keeps every final value minimal.
func (w *walker) loop() {
	topo := w.opts.Topology
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		next := w.field.height[u] + 1
		for _, d := range chunk.Neighbors8 {
			v, ok := topo.Step(u, d[0], d[1])
			if !ok {
				continue
			}
			if v.Chunk != u.Chunk && !w.admit(v.Chunk) {
				continue
			}
			if h := w.field.height[v]; h == unreached || next < h {
				w.field.height[v] = next
				w.queue = append(w.queue, v)
			}
		}
	}
	w.queue = nil
}

// finish collapses unreached pockets to zero.
func (w *walker) finish() {
	for c, h := range w.field.height {
		if h == unreached {
			w.field.height[c] = 0
		}
	}
}
