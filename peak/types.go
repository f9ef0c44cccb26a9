package peak

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("peak: invalid option supplied")

// Landmark is one plateau of the height field reduced to its center.
type Landmark struct {
	Tiles  []chunk.WorldCoord `json:"tiles"`
	Center chunk.WorldCoord   `json:"center"`
	Height int                `json:"height"`
}

// ID returns the stable "chunk-x-y" identifier of the landmark's center.
func (l Landmark) ID() string {
	return ID(l.Center)
}

// ID formats the landmark identifier for a center cell.
func ID(c chunk.WorldCoord) string {
	return string(c.Chunk) + "-" + strconv.Itoa(c.X) + "-" + strconv.Itoa(c.Y)
}

// ParseID recovers the center cell from a landmark identifier.
func ParseID(id string) (chunk.WorldCoord, bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return chunk.WorldCoord{}, false
	}
	name := chunk.Name(parts[0])
	if !name.Valid() {
		return chunk.WorldCoord{}, false
	}
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return chunk.WorldCoord{}, false
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return chunk.WorldCoord{}, false
	}
	return chunk.At(name, x, y), true
}

// Defaults used by DefaultOptions.
const (
	DefaultExclusionMultiplier = 1.5
	DefaultMinHeight           = 2
	DefaultMaxExclusionRadius  = 10
)

// Option configures Find and Filter.
type Option func(*Options)

// Options holds the tunables of peak finding and filtering.
type Options struct {
	// Obstacle is the terrain class never considered part of a plateau.
	Obstacle terrain.Terrain
	// Topology is used by Filter to lay exclusion zones across seams.
	Topology chunk.Topology
	// ExclusionMultiplier scales an accepted landmark's height into its
	// exclusion radius.
	ExclusionMultiplier float64
	// MinHeight drops shorter landmarks (except the tallest).
	MinHeight int
	// MaxPeaks caps the number of accepted landmarks; 0 means no cap.
	MaxPeaks int
	// MaxExclusionRadius bounds the exclusion zone.
	MaxExclusionRadius int

	err error
}

// DefaultOptions returns Wall obstacles, 50-cell chunks, multiplier 1.5,
// minimum height 2, no peak cap and a 10-cell exclusion radius cap.
func DefaultOptions() Options {
	return Options{
		Obstacle:            terrain.Wall,
		Topology:            chunk.DefaultTopology(),
		ExclusionMultiplier: DefaultExclusionMultiplier,
		MinHeight:           DefaultMinHeight,
		MaxExclusionRadius:  DefaultMaxExclusionRadius,
	}
}

// WithObstacle sets the terrain class treated as obstacle.
func WithObstacle(t terrain.Terrain) Option {
	return func(o *Options) { o.Obstacle = t }
}

// WithTopology sets the chunk geometry used for exclusion zones.
func WithTopology(t chunk.Topology) Option {
	return func(o *Options) {
		if err := t.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Topology = t
	}
}

// WithExclusionMultiplier sets the height-to-radius factor (must be ≥ 0).
func WithExclusionMultiplier(m float64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: ExclusionMultiplier cannot be negative (%g)", ErrOptionViolation, m)
			return
		}
		o.ExclusionMultiplier = m
	}
}

// WithMinHeight sets the minimum landmark height (must be ≥ 0).
func WithMinHeight(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MinHeight cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MinHeight = h
	}
}

// WithMaxPeaks caps accepted landmarks; 0 disables the cap.
func WithMaxPeaks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPeaks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPeaks = n
	}
}

// WithMaxExclusionRadius caps the exclusion radius (must be ≥ 0).
func WithMaxExclusionRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: MaxExclusionRadius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.MaxExclusionRadius = r
	}
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
