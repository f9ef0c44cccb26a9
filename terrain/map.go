package terrain

import (
	"fmt"
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// Map is an in-memory multi-chunk terrain store. Chunks that were never set
// read as Wall, so traversals cannot wander into unloaded parts of the world.
type Map struct {
	topo   chunk.Topology
	chunks map[chunk.Name][]Terrain
}

// NewMap returns an empty Map for the given topology.
func NewMap(topo chunk.Topology) *Map {
	return &Map{topo: topo, chunks: make(map[chunk.Name][]Terrain)}
}

// Topology returns the chunk geometry of m.
func (m *Map) Topology() chunk.Topology {
	return m.topo
}

// Terrain implements Query.
func (m *Map) Terrain(name chunk.Name, x, y int) Terrain {
	cells, ok := m.chunks[name]
	if !ok || !m.topo.InBounds(x, y) {
		return Wall
	}
	return cells[y*m.topo.Size+x]
}

// Has reports whether name was loaded.
func (m *Map) Has(name chunk.Name) bool {
	_, ok := m.chunks[name]
	return ok
}

// Names lists the loaded chunks in sorted order.
func (m *Map) Names() []chunk.Name {
	out := make([]chunk.Name, 0, len(m.chunks))
	for n := range m.chunks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fill loads name with every cell set to t.
func (m *Map) Fill(name chunk.Name, t Terrain) {
	cells := make([]Terrain, m.topo.Size*m.topo.Size)
	for i := range cells {
		cells[i] = t
	}
	m.chunks[name] = cells
}

// Set writes one cell, loading the chunk as Plain first if needed.
func (m *Map) Set(name chunk.Name, x, y int, t Terrain) {
	if !m.topo.InBounds(x, y) {
		return
	}
	if _, ok := m.chunks[name]; !ok {
		m.Fill(name, Plain)
	}
	m.chunks[name][y*m.topo.Size+x] = t
}

// Border walls off the outer ring of name.
func (m *Map) Border(name chunk.Name) {
	last := m.topo.Size - 1
	for i := 0; i <= last; i++ {
		m.Set(name, i, 0, Wall)
		m.Set(name, i, last, Wall)
		m.Set(name, 0, i, Wall)
		m.Set(name, last, i, Wall)
	}
}

// FromRows loads name from fixture rows ('.', '#', '~'), one string per y.
func (m *Map) FromRows(name chunk.Name, rows []string) error {
	if len(rows) != m.topo.Size {
		return fmt.Errorf("%w: %d rows, want %d", ErrBadFixture, len(rows), m.topo.Size)
	}
	cells := make([]Terrain, m.topo.Size*m.topo.Size)
	for y, row := range rows {
		if len(row) != m.topo.Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadFixture, y, len(row), m.topo.Size)
		}
		for x := 0; x < len(row); x++ {
			t, err := FromGlyph(row[x])
			if err != nil {
				return fmt.Errorf("%s row %d col %d: %w", name, y, x, err)
			}
			cells[y*m.topo.Size+x] = t
		}
	}
	m.chunks[name] = cells
	return nil
}

// Rows renders name back into fixture rows.
func (m *Map) Rows(name chunk.Name) []string {
	rows := make([]string, m.topo.Size)
	buf := make([]byte, m.topo.Size)
	for y := 0; y < m.topo.Size; y++ {
		for x := 0; x < m.topo.Size; x++ {
			buf[x] = m.Terrain(name, x, y).Glyph()
		}
		rows[y] = string(buf)
	}
	return rows
}

// Count tallies the cells of name by terrain class.
func (m *Map) Count(name chunk.Name) map[Terrain]int {
	out := make(map[Terrain]int, 3)
	for _, t := range m.chunks[name] {
		out[t]++
	}
	return out
}
