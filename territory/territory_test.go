package territory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/heightfield"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/peak"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/territory"
)

var topo10 = chunk.Topology{Size: 10}

func landmark(name chunk.Name, x, y, h int) peak.Landmark {
	c := chunk.At(name, x, y)
	return peak.Landmark{Tiles: []chunk.WorldCoord{c}, Center: c, Height: h}
}

func TestDivide_BorderedRoomClaimsInterior(t *testing.T) {
	m := terrain.NewMap(topo10)
	m.Fill("E0S0", terrain.Plain)
	m.Border("E0S0")

	got, err := territory.Divide([]peak.Landmark{landmark("E0S0", 5, 5, 4)}, m, territory.WithTopology(topo10))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Cells, 64)
	assert.Equal(t, chunk.At("E0S0", 5, 5), got[0].Cells[0])
	assert.Equal(t, 64, got.CellCount())
}

// corridor is a 1×7 strip at row 4 of a 9-cell chunk.
func corridor(t *testing.T) *terrain.Map {
	t.Helper()
	m := terrain.NewMap(chunk.Topology{Size: 9})
	rows := []string{
		"#########", "#########", "#########", "#########",
		"#.......#",
		"#########", "#########", "#########", "#########",
	}
	require.NoError(t, m.FromRows("E0S0", rows))
	return m
}

func TestDivide_TiesGoToSeedOrder(t *testing.T) {
	topo := territory.WithTopology(chunk.Topology{Size: 9})
	mid := chunk.At("E0S0", 4, 4)

	cases := []struct {
		name  string
		in    []peak.Landmark
		owner string
	}{
		{"TallerListedSecond", []peak.Landmark{landmark("E0S0", 2, 4, 1), landmark("E0S0", 6, 4, 2)}, "E0S0-6-4"},
		{"TallerListedFirst", []peak.Landmark{landmark("E0S0", 2, 4, 2), landmark("E0S0", 6, 4, 1)}, "E0S0-2-4"},
		{"EqualHeightsInputOrder", []peak.Landmark{landmark("E0S0", 6, 4, 3), landmark("E0S0", 2, 4, 3)}, "E0S0-6-4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := territory.Divide(tc.in, corridor(t), topo)
			require.NoError(t, err)
			owner, ok := got.Owner(mid)
			require.True(t, ok)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, 7, got.CellCount())
			assert.Equal(t, tc.owner, got[0].Landmark)
		})
	}
}

// seamRooms returns two bordered rooms E0S0 and E1S0 joined by an opening
// along their shared edge (rows 1..8).
func seamRooms() *terrain.Map {
	m := terrain.NewMap(topo10)
	for _, n := range []chunk.Name{"E0S0", "E1S0"} {
		m.Fill(n, terrain.Plain)
		m.Border(n)
	}
	for y := 1; y < 9; y++ {
		m.Set("E0S0", 9, y, terrain.Plain)
		m.Set("E1S0", 0, y, terrain.Plain)
	}
	return m
}

// TestDivide_UncontestedNeighbourIsNotEntered: without a whitelist only
// chunks holding a landmark center are eligible.
func TestDivide_UncontestedNeighbourIsNotEntered(t *testing.T) {
	got, err := territory.Divide([]peak.Landmark{landmark("E0S0", 7, 5, 2)}, seamRooms(), territory.WithTopology(topo10))
	require.NoError(t, err)
	id := got[0].Landmark
	assert.Equal(t, 72, got.CountIn(id, "E0S0"))
	assert.Zero(t, got.CountIn(id, "E1S0"))
}

// TestDivide_WhitelistedUncontestedNeighbourIsFlooded pins the chunk-level
// rule: a whitelisted neighbour with no landmark is claimed whole by the
// landmark nearest the seam.
func TestDivide_WhitelistedUncontestedNeighbourIsFlooded(t *testing.T) {
	got, err := territory.Divide([]peak.Landmark{landmark("E0S0", 7, 5, 2)}, seamRooms(),
		territory.WithTopology(topo10), territory.WithWhitelist("E0S0", "E1S0"))
	require.NoError(t, err)
	id := got[0].Landmark
	assert.Equal(t, 72, got.CountIn(id, "E1S0"))
	assert.Equal(t, 144, got.CellCount())
}

// TestDivide_WhitelistExcludesHomeChunk: a whitelist that leaves out a
// landmark's own chunk keeps that chunk unclaimed.
func TestDivide_WhitelistExcludesHomeChunk(t *testing.T) {
	cases := []struct {
		name   string
		in     []peak.Landmark
		counts map[string]map[chunk.Name]int
	}{
		{
			name: "OnlyLandmarkOutside",
			in:   []peak.Landmark{landmark("E0S0", 5, 5, 2)},
			counts: map[string]map[chunk.Name]int{
				"E0S0-5-5": {"E0S0": 0, "E1S0": 0},
			},
		},
		{
			name: "NeighbourStopsAtSeam",
			in:   []peak.Landmark{landmark("E0S0", 5, 5, 3), landmark("E1S0", 5, 5, 2)},
			counts: map[string]map[chunk.Name]int{
				"E0S0-5-5": {"E0S0": 0, "E1S0": 0},
				"E1S0-5-5": {"E0S0": 0, "E1S0": 72},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := territory.Divide(tc.in, seamRooms(),
				territory.WithTopology(topo10), territory.WithWhitelist("E1S0"))
			require.NoError(t, err)
			require.Len(t, got, len(tc.in))
			for id, byChunk := range tc.counts {
				for name, want := range byChunk {
					assert.Equal(t, want, got.CountIn(id, name), "%s in %s", id, name)
				}
			}
			for c := range got.Owners() {
				assert.Equal(t, chunk.Name("E1S0"), c.Chunk, c.String())
			}
		})
	}
}

func TestDivide_ForeignDepthBoundsClaimIntoNeighbour(t *testing.T) {
	const depth = 3
	got, err := territory.Divide([]peak.Landmark{landmark("E0S0", 7, 5, 2)}, seamRooms(),
		territory.WithTopology(topo10),
		territory.WithWhitelist("E0S0", "E1S0"),
		territory.WithForeignDepth(depth))
	require.NoError(t, err)

	id := got[0].Landmark
	foreign := got.CountIn(id, "E1S0")
	assert.Positive(t, foreign)
	assert.Less(t, foreign, 72)
	assert.Equal(t, 72, got.CountIn(id, "E0S0"))

	owners := got.Owners()
	for x := 0; x < depth; x++ {
		assert.Contains(t, owners, chunk.At("E1S0", x, 5))
	}
	for c := range owners {
		if c.Chunk == "E1S0" {
			assert.Less(t, c.X, depth, c.String())
		}
	}
}

func TestDivide_MaxChunks(t *testing.T) {
	m := terrain.NewMap(topo10)
	names := []chunk.Name{"E0S0", "E1S0", "E2S0"}
	for _, n := range names {
		m.Fill(n, terrain.Plain)
	}
	in := []peak.Landmark{landmark("E0S0", 5, 5, 3)}

	all, err := territory.Divide(in, m, territory.WithTopology(topo10), territory.WithWhitelist(names...))
	require.NoError(t, err)
	assert.Equal(t, 300, all.CellCount())

	capped, err := territory.Divide(in, m, territory.WithTopology(topo10), territory.WithWhitelist(names...), territory.WithMaxChunks(2))
	require.NoError(t, err)
	id := capped[0].Landmark
	assert.Equal(t, 100, capped.CountIn(id, "E1S0"))
	assert.Zero(t, capped.CountIn(id, "E2S0"))
}

func TestDivide_ObstacleCenterYieldsEmptyTerritory(t *testing.T) {
	m := terrain.NewMap(topo10)
	m.Fill("E0S0", terrain.Plain)
	m.Border("E0S0")
	got, err := territory.Divide([]peak.Landmark{landmark("E0S0", 0, 0, 1), landmark("E0S0", 5, 5, 1)}, m, territory.WithTopology(topo10))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Cells)
	assert.Len(t, got[1].Cells, 64)
}

func TestDivide_EmptyAndInvalid(t *testing.T) {
	got, err := territory.Divide(nil, terrain.NewMap(topo10))
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, opt := range []territory.Option{
		territory.WithMaxChunks(-1),
		territory.WithForeignDepth(-1),
		territory.WithTopology(chunk.Topology{Size: 1}),
	} {
		_, err := territory.Divide(nil, terrain.NewMap(topo10), opt)
		assert.True(t, errors.Is(err, territory.ErrOptionViolation))
	}
}

// TestDivide_Invariants runs the whole landmark pipeline over generated
// terrain and checks the partition guarantees.
func TestDivide_Invariants(t *testing.T) {
	topo := chunk.Topology{Size: 20}
	names := []chunk.Name{"W0N0", "E0N0", "W0S0", "E0S0"}
	for _, seed := range []int64{1, 7, 99} {
		gen := terrain.DefaultGenOptions()
		gen.Seed = seed
		m := terrain.Generate(topo, names, gen)

		f, err := heightfield.Compute(m, names, heightfield.WithTopology(topo))
		require.NoError(t, err)
		found, err := peak.Find(f, m)
		require.NoError(t, err)
		lms, err := peak.Filter(found, peak.WithTopology(topo), peak.WithMaxExclusionRadius(4))
		require.NoError(t, err)
		require.NotEmpty(t, lms)

		got, err := territory.Divide(lms, m, territory.WithTopology(topo))
		require.NoError(t, err)

		eligible := map[chunk.Name]bool{}
		for _, lm := range lms {
			eligible[lm.Center.Chunk] = true
		}

		owners := map[chunk.WorldCoord]string{}
		for _, tr := range got {
			for _, c := range tr.Cells {
				_, dup := owners[c]
				require.False(t, dup, "cell %s claimed twice", c)
				require.NotEqual(t, terrain.Wall, terrain.At(m, c))
				owners[c] = tr.Landmark
			}
			assertConnected(t, topo, tr)
		}

		// Every walkable cell reachable from a center through eligible
		// chunks is owned.
		reach := map[chunk.WorldCoord]bool{}
		var queue []chunk.WorldCoord
		for _, lm := range lms {
			if terrain.At(m, lm.Center) != terrain.Wall && !reach[lm.Center] {
				reach[lm.Center] = true
				queue = append(queue, lm.Center)
			}
		}
		for qi := 0; qi < len(queue); qi++ {
			for _, off := range chunk.Neighbors4 {
				v, ok := topo.Step(queue[qi], off[0], off[1])
				if !ok || reach[v] || !eligible[v.Chunk] || terrain.At(m, v) == terrain.Wall {
					continue
				}
				reach[v] = true
				queue = append(queue, v)
			}
		}
		assert.Len(t, owners, len(reach), "seed %d", seed)
		for c := range reach {
			assert.Contains(t, owners, c)
		}
	}
}

func assertConnected(t *testing.T, topo chunk.Topology, tr territory.Territory) {
	t.Helper()
	if len(tr.Cells) == 0 {
		return
	}
	own := make(map[chunk.WorldCoord]bool, len(tr.Cells))
	for _, c := range tr.Cells {
		own[c] = true
	}
	seen := map[chunk.WorldCoord]bool{tr.Center: true}
	queue := []chunk.WorldCoord{tr.Center}
	for qi := 0; qi < len(queue); qi++ {
		for _, off := range chunk.Neighbors4 {
			v, ok := topo.Step(queue[qi], off[0], off[1])
			if ok && own[v] && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	assert.Len(t, seen, len(own), "territory %s is not connected", tr.Landmark)
}
