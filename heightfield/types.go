package heightfield

import (
	"errors"
	"fmt"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("heightfield: invalid option supplied")

// Option configures Compute.
type Option func(*Options)

// Options holds the tunables of one distance transform.
type Options struct {
	Topology  chunk.Topology
	Obstacle  terrain.Terrain
	MaxChunks int
	// Whitelist, when non-nil, restricts lazily admitted chunks.
	Whitelist map[chunk.Name]bool

	err error
}

// DefaultOptions returns 50-cell chunks, Wall obstacles, no expansion
// beyond the starting chunks and no whitelist.
func DefaultOptions() Options {
	return Options{
		Topology: chunk.DefaultTopology(),
		Obstacle: terrain.Wall,
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

// WithObstacle sets the terrain class treated as obstacle.
func WithObstacle(t terrain.Terrain) Option {
	return func(o *Options) {
		o.Obstacle = t
	}
}

// WithMaxChunks caps the total number of chunks the field may cover.
func WithMaxChunks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxChunks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxChunks = n
	}
}

// WithWhitelist restricts lazy expansion to the listed chunks.
func WithWhitelist(names ...chunk.Name) Option {
	return func(o *Options) {
		o.Whitelist = make(map[chunk.Name]bool, len(names))
		for _, n := range names {
			o.Whitelist[n] = true
		}
	}
}
