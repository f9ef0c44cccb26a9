package terrain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

func TestMap_UnknownChunkIsWall(t *testing.T) {
	m := terrain.NewMap(chunk.Topology{Size: 5})
	assert.Equal(t, terrain.Wall, m.Terrain("E0N0", 2, 2))
	m.Set("E0N0", 2, 2, terrain.Swamp)
	assert.Equal(t, terrain.Swamp, m.Terrain("E0N0", 2, 2))
	assert.Equal(t, terrain.Plain, m.Terrain("E0N0", 1, 1))
	assert.Equal(t, terrain.Wall, m.Terrain("E0N0", 5, 1), "out of range")
	assert.True(t, m.Has("E0N0"))
	assert.False(t, m.Has("E1N0"))
}

func TestMap_FromRowsRoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#..~#",
		"#.#.#",
		"#~..#",
		"#####",
	}
	m := terrain.NewMap(chunk.Topology{Size: 5})
	require.NoError(t, m.FromRows("W1S1", rows))
	assert.Equal(t, rows, m.Rows("W1S1"))
	assert.Equal(t, map[terrain.Terrain]int{terrain.Wall: 17, terrain.Plain: 6, terrain.Swamp: 2}, m.Count("W1S1"))
}

func TestMap_FromRowsRejects(t *testing.T) {
	m := terrain.NewMap(chunk.Topology{Size: 3})
	err := m.FromRows("E0N0", []string{"...", "..."})
	assert.True(t, errors.Is(err, terrain.ErrBadFixture))
	err = m.FromRows("E0N0", []string{"...", "..", "..."})
	assert.True(t, errors.Is(err, terrain.ErrBadFixture))
	err = m.FromRows("E0N0", []string{"...", ".x.", "..."})
	assert.True(t, errors.Is(err, terrain.ErrUnknownTerrain))
}

func TestParse(t *testing.T) {
	for _, tt := range []terrain.Terrain{terrain.Plain, terrain.Wall, terrain.Swamp} {
		got, err := terrain.Parse(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}
	_, err := terrain.Parse("lava")
	assert.True(t, errors.Is(err, terrain.ErrUnknownTerrain))
}

// TestGenerate_Deterministic checks that the same seed reproduces the same
// map and that border exits stay open.
func TestGenerate_Deterministic(t *testing.T) {
	topo := chunk.Topology{Size: 20}
	names := []chunk.Name{"E0N0", "E1N0"}
	opts := terrain.DefaultGenOptions()
	opts.Seed = 7

	a := terrain.Generate(topo, names, opts)
	b := terrain.Generate(topo, names, opts)
	for _, n := range names {
		assert.Equal(t, a.Rows(n), b.Rows(n))
		assert.Equal(t, terrain.Wall, a.Terrain(n, 0, 0))
		assert.Equal(t, terrain.Wall, a.Terrain(n, 19, 19))
	}
	assert.Equal(t, names, a.Names())

	opts.Seed = 8
	c := terrain.Generate(topo, names, opts)
	assert.NotEqual(t, a.Rows("E0N0"), c.Rows("E0N0"))
}
