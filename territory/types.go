package territory

import (
	"errors"
	"fmt"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("territory: invalid option supplied")

// Territory is the set of cells owned by one landmark.
type Territory struct {
	Landmark string             `json:"landmark"`
	Center   chunk.WorldCoord   `json:"center"`
	Height   int                `json:"height"`
	Cells    []chunk.WorldCoord `json:"cells"`
}

// Map lists territories in seeding order (tallest landmark first).
type Map []Territory

// Get returns the territory of landmark id.
func (m Map) Get(id string) (Territory, bool) {
	for _, t := range m {
		if t.Landmark == id {
			return t, true
		}
	}
	return Territory{}, false
}

// Len is the number of territories.
func (m Map) Len() int { return len(m) }

// Owner returns the landmark owning c. It scans every territory; use Owners
// for repeated lookups.
func (m Map) Owner(c chunk.WorldCoord) (string, bool) {
	for _, t := range m {
		for _, cell := range t.Cells {
			if cell == c {
				return t.Landmark, true
			}
		}
	}
	return "", false
}

// IDs lists landmark identifiers in map order.
func (m Map) IDs() []string {
	out := make([]string, len(m))
	for i, t := range m {
		out[i] = t.Landmark
	}
	return out
}

// CellCount is the total number of claimed cells.
func (m Map) CellCount() int {
	n := 0
	for _, t := range m {
		n += len(t.Cells)
	}
	return n
}

// Owners builds the reverse index from cell to landmark id.
func (m Map) Owners() map[chunk.WorldCoord]string {
	out := make(map[chunk.WorldCoord]string, m.CellCount())
	for _, t := range m {
		for _, c := range t.Cells {
			out[c] = t.Landmark
		}
	}
	return out
}

// CountIn returns how many of id's cells lie in chunk name.
func (m Map) CountIn(id string, name chunk.Name) int {
	t, ok := m.Get(id)
	if !ok {
		return 0
	}
	n := 0
	for _, c := range t.Cells {
		if c.Chunk == name {
			n++
		}
	}
	return n
}

// Option configures Divide.
type Option func(*Options)

// Options holds the tunables of one division.
type Options struct {
	Topology chunk.Topology
	Obstacle terrain.Terrain
	// MaxChunks caps distinct chunks entered; 0 means no cap.
	MaxChunks int
	// Whitelist, when non-nil, replaces the default eligible set.
	Whitelist map[chunk.Name]bool
	// ForeignDepth bounds steps outside a landmark's home chunk; 0 = unbounded.
	ForeignDepth int

	err error
}

// DefaultOptions returns 50-cell chunks, Wall obstacles, no chunk cap,
// landmark-chunk eligibility and unbounded foreign depth.
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
	return func(o *Options) { o.Obstacle = t }
}

// WithMaxChunks caps the number of distinct chunks the flood may enter.
func WithMaxChunks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxChunks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxChunks = n
	}
}

// WithWhitelist replaces the default eligible chunk set.
func WithWhitelist(names ...chunk.Name) Option {
	return func(o *Options) {
		o.Whitelist = make(map[chunk.Name]bool, len(names))
		for _, n := range names {
			o.Whitelist[n] = true
		}
	}
}

// WithForeignDepth bounds how far a claim may reach outside its landmark's
// home chunk.
func WithForeignDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ForeignDepth cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ForeignDepth = n
	}
}
