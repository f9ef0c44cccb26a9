package chunk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the side length of a chunk when no Topology is supplied.
const DefaultSize = 50

// ErrInvalidSize is returned by Topology.Validate for sizes below 3.
var ErrInvalidSize = errors.New("chunk: size must be at least 3")

// Name is a chunk identifier such as "E12N7" or "W0S3".
type Name string

// Position is the signed chunk-grid position of a Name.
// X grows eastward, Y grows southward.
type Position struct {
	X, Y int
}

// Coord is a local cell coordinate inside one chunk.
type Coord struct {
	X, Y int
}

// WorldCoord is a cell addressed by its chunk and local coordinate.
type WorldCoord struct {
	Chunk Name `json:"chunk"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
}

// At builds a WorldCoord.
func At(name Name, x, y int) WorldCoord {
	return WorldCoord{Chunk: name, X: x, Y: y}
}

// Local drops the chunk part.
func (c WorldCoord) Local() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// String returns the canonical "chunk:x,y" key.
func (c WorldCoord) String() string {
	return string(c.Chunk) + ":" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseWorldCoord parses the "chunk:x,y" form produced by String.
func ParseWorldCoord(s string) (WorldCoord, bool) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return WorldCoord{}, false
	}
	if _, ok := ParseName(name); !ok {
		return WorldCoord{}, false
	}
	xs, ys, ok := strings.Cut(rest, ",")
	if !ok {
		return WorldCoord{}, false
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return WorldCoord{}, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return WorldCoord{}, false
	}
	return WorldCoord{Chunk: Name(name), X: x, Y: y}, true
}

// Neighbors4 are the orthogonal offsets N, E, S, W.
var Neighbors4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors8 are all eight offsets, clockwise from N.
var Neighbors8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Topology fixes the side length shared by every chunk of a world.
type Topology struct {
	Size int
}

// DefaultTopology returns a Topology with DefaultSize.
func DefaultTopology() Topology {
	return Topology{Size: DefaultSize}
}

// Validate reports whether the topology has an interior distinct from its
// edge ring.
func (t Topology) Validate() error {
	if t.Size < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, t.Size)
	}
	return nil
}
