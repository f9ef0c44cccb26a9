// Package terrain classifies world cells and supplies the read-only terrain
// lookups consumed by every traversal in this module.
package terrain

import (
	"errors"
	"fmt"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// ErrUnknownTerrain is returned when a terrain name or glyph is not recognised.
var ErrUnknownTerrain = errors.New("terrain: unknown terrain")

// ErrBadFixture is returned by FromRows for rows that do not match the topology.
var ErrBadFixture = errors.New("terrain: fixture does not match chunk size")

// Terrain is the closed classification of a single cell.
type Terrain uint8

const (
	// Plain is open, walkable ground.
	Plain Terrain = iota
	// Wall blocks movement and seeds distance-from-obstacle propagation.
	Wall
	// Swamp is walkable but slow.
	Swamp
)

var names = [...]string{Plain: "plain", Wall: "wall", Swamp: "swamp"}

func (t Terrain) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// Glyph is the single-character fixture form of t.
func (t Terrain) Glyph() byte {
	switch t {
	case Wall:
		return '#'
	case Swamp:
		return '~'
	default:
		return '.'
	}
}

// Parse converts a terrain name ("plain", "wall", "swamp") back to a Terrain.
func Parse(s string) (Terrain, error) {
	for i, n := range names {
		if n == s {
			return Terrain(i), nil
		}
	}
	return Plain, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// FromGlyph decodes a fixture character.
func FromGlyph(g byte) (Terrain, error) {
	switch g {
	case '.':
		return Plain, nil
	case '#':
		return Wall, nil
	case '~':
		return Swamp, nil
	}
	return Plain, fmt.Errorf("%w: glyph %q", ErrUnknownTerrain, g)
}

// Query answers "what is at (x,y) in this chunk". Implementations must be
// pure for the duration of one build.
type Query interface {
	Terrain(name chunk.Name, x, y int) Terrain
}

// QueryFunc adapts a plain function to Query.
type QueryFunc func(name chunk.Name, x, y int) Terrain

// Terrain implements Query.
func (f QueryFunc) Terrain(name chunk.Name, x, y int) Terrain {
	return f(name, x, y)
}

// At is a convenience for querying a WorldCoord.
func At(q Query, c chunk.WorldCoord) Terrain {
	return q.Terrain(c.Chunk, c.X, c.Y)
}
