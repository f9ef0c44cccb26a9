package scheduler

import (
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/network"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

var (
	// ErrNilState is returned when Step receives a nil State.
	ErrNilState = errors.New("scheduler: state is nil")

	// ErrUnknownPhase indicates a corrupted or foreign State.
	ErrUnknownPhase = errors.New("scheduler: unknown phase")

	// ErrCursor indicates a State cursor outside the scheduled data.
	ErrCursor = errors.New("scheduler: cursor out of range")

	// ErrNotDone is returned when a graph is requested before the build ends.
	ErrNotDone = errors.New("scheduler: build not finished")
)

// Phase names a step of the build.
type Phase string

const (
	PhaseLookup    Phase = "lookup"
	PhaseAdjacency Phase = "adjacency"
	PhaseDistance  Phase = "distance"
	PhaseDone      Phase = "done"
)

// State is the resumable progress of one build.
type State struct {
	Phase Phase `json:"phase"`

	// Territory and Cell index the next cell in lookup and adjacency.
	Territory int `json:"territory"`
	Cell      int `json:"cell"`

	// Lookup maps a cell key ("chunk:x,y") to its landmark id.
	Lookup map[string]string `json:"lookup,omitempty"`

	// Edges holds discovered edge keys; sorted once adjacency ends.
	Edges []string `json:"edges,omitempty"`
	// Edge indexes the next edge to weigh.
	Edge    int            `json:"edge"`
	Weights map[string]int `json:"weights,omitempty"`

	seen map[string]bool
}

// NewState returns a State at the start of lookup.
func NewState() *State {
	return &State{Phase: PhaseLookup}
}

// Done reports whether the build finished.
func (s *State) Done() bool { return s.Phase == PhaseDone }

// WeightedEdges returns the weighed edges sorted by key.
func (s *State) WeightedEdges() []network.WeightedEdge {
	keys := make([]string, 0, len(s.Weights))
	for k := range s.Weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]network.WeightedEdge, 0, len(keys))
	for _, k := range keys {
		e, ok := network.SplitEdgeKey(k)
		if !ok {
			continue
		}
		out = append(out, network.WeightedEdge{Edge: e, Distance: s.Weights[k]})
	}
	return out
}

// Graph builds the network from the finished State. Landmarks without
// edges are absent; use Scheduler.Graph to include them.
func (s *State) Graph() (*network.Graph, error) {
	if !s.Done() {
		return nil, ErrNotDone
	}
	return network.NewGraph(nil, s.WeightedEdges()), nil
}

// Option configures a Scheduler.
type Option func(*Options)

// Options holds scheduler parameters.
type Options struct {
	Topology    chunk.Topology
	Obstacle    terrain.Terrain
	MaxDistance int
	Logger      *slog.Logger
}

// DefaultOptions mirrors network.DefaultOptions and discards logs.
func DefaultOptions() Options {
	n := network.DefaultOptions()
	return Options{
		Topology:    n.Topology,
		Obstacle:    n.Obstacle,
		MaxDistance: n.MaxDistance,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTopology sets the chunk geometry.
func WithTopology(t chunk.Topology) Option {
	return func(o *Options) { o.Topology = t }
}

// WithObstacle sets the impassable terrain class.
func WithObstacle(t terrain.Terrain) Option {
	return func(o *Options) { o.Obstacle = t }
}

// WithMaxDistance caps each walking-distance search.
func WithMaxDistance(d int) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// WithLogger sets the logger for phase transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
