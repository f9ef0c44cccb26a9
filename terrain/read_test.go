package terrain_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

const twoChunks = `
[E0S0]
###
#..
###

[E1S0]
###
..~
###
`

func TestRead(t *testing.T) {
	topo := chunk.Topology{Size: 3}
	m, err := terrain.Read(strings.NewReader(twoChunks), topo)
	require.NoError(t, err)
	assert.Equal(t, []chunk.Name{"E0S0", "E1S0"}, m.Names())
	assert.Equal(t, terrain.Swamp, m.Terrain("E1S0", 2, 1))

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	again, err := terrain.Read(&buf, topo)
	require.NoError(t, err)
	assert.Equal(t, m.Rows("E1S0"), again.Rows("E1S0"))
}

func TestRead_Rejects(t *testing.T) {
	topo := chunk.Topology{Size: 3}
	for name, doc := range map[string]string{
		"RowsBeforeHeader": "...\n",
		"BadName":          "[e0s0]\n...\n...\n...\n",
		"ShortChunk":       "[E0S0]\n...\n...\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := terrain.Read(strings.NewReader(doc), topo)
			assert.True(t, errors.Is(err, terrain.ErrBadFixture), err)
		})
	}
}
