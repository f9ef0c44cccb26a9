package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")

	// ErrNodeNotFound indicates a route endpoint absent from the graph.
	ErrNodeNotFound = errors.New("network: landmark not found in graph")

	// ErrNoRoute indicates the endpoints lie in different components.
	ErrNoRoute = errors.New("network: no route between landmarks")
)

const (
	// Unreachable is the walking distance of an edge whose centers could not
	// be joined within the search cap.
	Unreachable = -1

	// DefaultMaxDistance caps the walking-distance search.
	DefaultMaxDistance = 150

	keySep = "|"
)

// Edge is an undirected landmark pair with A < B.
type Edge struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewEdge orders a and b canonically.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Key returns the canonical "a|b" form.
func (e Edge) Key() string {
	return e.A + keySep + e.B
}

// EdgeKey is the canonical key of the pair {a, b}, independent of order.
func EdgeKey(a, b string) string {
	return NewEdge(a, b).Key()
}

// SplitEdgeKey parses a key produced by EdgeKey.
func SplitEdgeKey(key string) (Edge, bool) {
	a, b, ok := strings.Cut(key, keySep)
	if !ok || a == "" || b == "" || strings.Contains(b, keySep) {
		return Edge{}, false
	}
	return NewEdge(a, b), true
}

// WeightedEdge is an Edge with its walking distance.
type WeightedEdge struct {
	Edge
	Distance int `json:"distance"`
}

// Reachable reports whether the edge has a usable distance.
func (w WeightedEdge) Reachable() bool {
	return w.Distance != Unreachable
}

// Option configures a Walker.
type Option func(*Options)

// Options holds walking-distance parameters.
type Options struct {
	Topology    chunk.Topology
	Obstacle    terrain.Terrain
	MaxDistance int

	err error
}

// DefaultOptions returns 50-cell chunks, Wall obstacles and a cap of 150.
func DefaultOptions() Options {
	return Options{
		Topology:    chunk.DefaultTopology(),
		Obstacle:    terrain.Wall,
		MaxDistance: DefaultMaxDistance,
	}
}

// WithTopology sets the chunk geometry.
func WithTopology(t chunk.Topology) Option {
	return func(o *Options) {
		if err := t.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Topology = t
	}
}

// WithObstacle sets the impassable terrain class.
func WithObstacle(t terrain.Terrain) Option {
	return func(o *Options) { o.Obstacle = t }
}

// WithMaxDistance caps the search; must be positive.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}
