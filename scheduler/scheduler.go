package scheduler

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/network"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/territory"
)

// Scheduler advances States over one territory map. It holds no progress
// of its own.
type Scheduler struct {
	territories territory.Map
	centers     map[string]chunk.WorldCoord
	walker      *network.Walker
	topo        chunk.Topology
	log         *slog.Logger
}

// New validates opts and prepares a Scheduler for territories over q.
// Option errors are network.ErrOptionViolation.
func New(territories territory.Map, q terrain.Query, opts ...Option) (*Scheduler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w, err := network.NewWalker(q,
		network.WithTopology(o.Topology),
		network.WithObstacle(o.Obstacle),
		network.WithMaxDistance(o.MaxDistance),
	)
	if err != nil {
		return nil, err
	}
	centers := make(map[string]chunk.WorldCoord, len(territories))
	for _, t := range territories {
		centers[t.Landmark] = t.Center
	}
	return &Scheduler{
		territories: territories,
		centers:     centers,
		walker:      w,
		topo:        o.Topology,
		log:         o.Logger,
	}, nil
}

// Step performs at most budget operations on st and reports how many it
// used. It returns early after weighing one edge.
func (s *Scheduler) Step(st *State, budget int) (int, error) {
	if st == nil {
		return 0, ErrNilState
	}
	if err := s.check(st); err != nil {
		return 0, err
	}
	ops := 0
	for ops < budget {
		switch st.Phase {
		case PhaseLookup:
			ops += s.lookup(st, budget-ops)
		case PhaseAdjacency:
			ops += s.adjacency(st, budget-ops)
		case PhaseDistance:
			return ops + s.distance(st), nil
		case PhaseDone:
			return ops, nil
		default:
			return ops, fmt.Errorf("%w: %q", ErrUnknownPhase, st.Phase)
		}
	}
	return ops, nil
}

// Run steps st to completion with the given budget per invocation and
// returns the number of invocations used.
func (s *Scheduler) Run(st *State, budget int) (int, error) {
	if budget < 1 {
		budget = 1
	}
	calls := 0
	for st != nil && !st.Done() {
		if _, err := s.Step(st, budget); err != nil {
			return calls, err
		}
		calls++
	}
	return calls, nil
}

// Graph builds the network for a finished st, including landmarks without
// edges.
func (s *Scheduler) Graph(st *State) (*network.Graph, error) {
	if st == nil || !st.Done() {
		return nil, ErrNotDone
	}
	return network.NewGraph(s.territories.IDs(), st.WeightedEdges()), nil
}

func (s *Scheduler) check(st *State) error {
	switch st.Phase {
	case PhaseLookup, PhaseAdjacency:
		if st.Territory < 0 || st.Territory > len(s.territories) || st.Cell < 0 {
			return fmt.Errorf("%w: territory %d cell %d", ErrCursor, st.Territory, st.Cell)
		}
		if st.Territory < len(s.territories) && st.Cell > len(s.territories[st.Territory].Cells) {
			return fmt.Errorf("%w: territory %d cell %d", ErrCursor, st.Territory, st.Cell)
		}
	case PhaseDistance:
		if st.Edge < 0 || st.Edge > len(st.Edges) {
			return fmt.Errorf("%w: edge %d of %d", ErrCursor, st.Edge, len(st.Edges))
		}
	}
	return nil
}

// skip moves the cell cursor past exhausted territories.
func (s *Scheduler) skip(st *State) {
	for st.Territory < len(s.territories) && st.Cell >= len(s.territories[st.Territory].Cells) {
		st.Territory++
		st.Cell = 0
	}
}

func (s *Scheduler) lookup(st *State, budget int) int {
	if st.Lookup == nil {
		st.Lookup = make(map[string]string)
	}
	ops := 0
	for s.skip(st); ops < budget && st.Territory < len(s.territories); s.skip(st) {
		t := s.territories[st.Territory]
		st.Lookup[t.Cells[st.Cell].String()] = t.Landmark
		st.Cell++
		ops++
	}
	if st.Territory >= len(s.territories) {
		s.transition(st, PhaseAdjacency)
		st.Territory, st.Cell = 0, 0
	}
	return ops
}

func (s *Scheduler) adjacency(st *State, budget int) int {
	if st.seen == nil {
		st.seen = make(map[string]bool, len(st.Edges))
		for _, k := range st.Edges {
			st.seen[k] = true
		}
	}
	owner := func(c chunk.WorldCoord) (string, bool) {
		id, ok := st.Lookup[c.String()]
		return id, ok
	}
	ops := 0
	for s.skip(st); ops < budget && st.Territory < len(s.territories); s.skip(st) {
		t := s.territories[st.Territory]
		for _, e := range network.CellEdges(s.topo, owner, t.Cells[st.Cell], t.Landmark) {
			if k := e.Key(); !st.seen[k] {
				st.seen[k] = true
				st.Edges = append(st.Edges, k)
			}
		}
		st.Cell++
		ops++
	}
	if st.Territory >= len(s.territories) {
		sort.Strings(st.Edges)
		st.Lookup = nil
		st.seen = nil
		st.Territory, st.Cell = 0, 0
		st.Edge = 0
		st.Weights = make(map[string]int, len(st.Edges))
		s.transition(st, PhaseDistance)
	}
	return ops
}

// distance weighs at most one edge.
func (s *Scheduler) distance(st *State) int {
	ops := 0
	if st.Edge < len(st.Edges) {
		key := st.Edges[st.Edge]
		if st.Weights == nil {
			st.Weights = make(map[string]int, len(st.Edges))
		}
		d := network.Unreachable
		if e, ok := network.SplitEdgeKey(key); ok {
			d = s.walker.Weigh(e, s.centers).Distance
		}
		st.Weights[key] = d
		st.Edge++
		ops = 1
		s.log.Debug("edge weighed", "edge", key, "distance", d, "remaining", len(st.Edges)-st.Edge)
	}
	if st.Edge >= len(st.Edges) {
		s.transition(st, PhaseDone)
	}
	return ops
}

func (s *Scheduler) transition(st *State, to Phase) {
	s.log.Debug("scheduler phase",
		"from", st.Phase,
		"to", to,
		"territories", len(s.territories),
		"edges", len(st.Edges),
	)
	st.Phase = to
}
