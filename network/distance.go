package network

import (
	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// Walker computes capped walking distances over one terrain.
type Walker struct {
	q    terrain.Query
	opts Options
}

// NewWalker validates opts and binds them to q.
func NewWalker(q terrain.Query, opts ...Option) (*Walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Walker{q: q, opts: o}, nil
}

// Options returns the walker's settings.
func (w *Walker) Options() Options { return w.opts }

// Distance is the 8-connected hop count from from to to, or Unreachable
// when no path exists within MaxDistance.
func (w *Walker) Distance(from, to chunk.WorldCoord) int {
	if from == to {
		return 0
	}
	type item struct {
		c     chunk.WorldCoord
		depth int
	}
	topo := w.opts.Topology
	visited := map[chunk.WorldCoord]bool{from: true}
	queue := []item{{c: from}}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur.depth >= w.opts.MaxDistance {
			continue
		}
		for _, off := range chunk.Neighbors8 {
			v, ok := topo.Step(cur.c, off[0], off[1])
			if !ok || visited[v] || terrain.At(w.q, v) == w.opts.Obstacle {
				continue
			}
			if v == to {
				return cur.depth + 1
			}
			visited[v] = true
			queue = append(queue, item{c: v, depth: cur.depth + 1})
		}
	}
	return Unreachable
}

// Weigh measures e between the given centers.
func (w *Walker) Weigh(e Edge, centers map[string]chunk.WorldCoord) WeightedEdge {
	a, okA := centers[e.A]
	b, okB := centers[e.B]
	if !okA || !okB {
		return WeightedEdge{Edge: e, Distance: Unreachable}
	}
	return WeightedEdge{Edge: e, Distance: w.Distance(a, b)}
}

// WalkingDistance is a one-shot Walker.Distance.
func WalkingDistance(q terrain.Query, from, to chunk.WorldCoord, opts ...Option) (int, error) {
	w, err := NewWalker(q, opts...)
	if err != nil {
		return Unreachable, err
	}
	return w.Distance(from, to), nil
}
