package heightfield

import (
	"encoding/json"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// Field maps every initialised cell to its distance from the nearest
// obstacle. A Field is never mutated after Compute returns.
type Field struct {
	topo   chunk.Topology
	chunks []chunk.Name
	cells  []chunk.WorldCoord
	height map[chunk.WorldCoord]int
}

// Topology returns the chunk geometry the field was computed with.
func (f *Field) Topology() chunk.Topology {
	return f.topo
}

// At returns the height of c and whether c is covered by the field.
func (f *Field) At(c chunk.WorldCoord) (int, bool) {
	h, ok := f.height[c]
	return h, ok
}

// Height returns the height of c, or 0 when c is not covered.
func (f *Field) Height(c chunk.WorldCoord) int {
	return f.height[c]
}

// Len is the number of covered cells.
func (f *Field) Len() int {
	return len(f.cells)
}

// Chunks lists covered chunks in admission order.
func (f *Field) Chunks() []chunk.Name {
	out := make([]chunk.Name, len(f.chunks))
	copy(out, f.chunks)
	return out
}

// Cells lists covered cells in initialisation order.
func (f *Field) Cells() []chunk.WorldCoord {
	out := make([]chunk.WorldCoord, len(f.cells))
	copy(out, f.cells)
	return out
}

// Max returns the greatest height in the field (0 for an empty field).
func (f *Field) Max() int {
	best := 0
	for _, h := range f.height {
		if h > best {
			best = h
		}
	}
	return best
}

// MarshalJSON encodes the field as {"chunk:x,y": height}.
func (f *Field) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(f.height))
	for c, h := range f.height {
		out[c.String()] = h
	}
	return json.Marshal(out)
}
