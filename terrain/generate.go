package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// GenOptions tunes Generate.
type GenOptions struct {
	Seed int64
	// WallThreshold: noise values at or above it become Wall.
	WallThreshold float64
	// SwampThreshold: noise values at or below it become Swamp.
	SwampThreshold float64
	// Frequency of the base octave, in cycles per cell.
	Frequency float64
	Octaves   int
	// Persistence scales each successive octave's amplitude.
	Persistence float64
	// Border walls off the outer ring of every chunk except exit gaps.
	Border bool
	// ExitWidth is the width of the gap left in the middle of each border
	// edge so that neighbouring chunks stay connected. Ignored unless Border.
	ExitWidth int
}

// DefaultGenOptions returns settings that give roughly a fifth walls.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Seed:           1,
		WallThreshold:  0.68,
		SwampThreshold: 0.22,
		Frequency:      0.06,
		Octaves:        4,
		Persistence:    0.5,
		Border:         true,
		ExitWidth:      6,
	}
}

// Generate fills a Map with deterministic noise terrain for every name.
// Noise is sampled in world space, so features run continuously across seams.
func Generate(topo chunk.Topology, names []chunk.Name, opts GenOptions) *Map {
	m := NewMap(topo)
	noise := opensimplex.NewNormalized(opts.Seed)
	for _, name := range names {
		pos, ok := name.Position()
		if !ok {
			continue
		}
		m.Fill(name, Plain)
		for y := 0; y < topo.Size; y++ {
			for x := 0; x < topo.Size; x++ {
				wx := float64(pos.X*topo.Size + x)
				wy := float64(pos.Y*topo.Size + y)
				v := octaveNoise(noise, wx, wy, opts.Octaves, opts.Frequency, opts.Persistence)
				switch {
				case v >= opts.WallThreshold:
					m.Set(name, x, y, Wall)
				case v <= opts.SwampThreshold:
					m.Set(name, x, y, Swamp)
				}
			}
		}
		if opts.Border {
			borderWithExits(m, name, opts.ExitWidth)
		}
	}
	return m
}

func borderWithExits(m *Map, name chunk.Name, exit int) {
	size := m.topo.Size
	last := size - 1
	lo := (size - exit) / 2
	hi := lo + exit
	for i := 0; i < size; i++ {
		if i >= lo && i < hi && i != 0 && i != last {
			continue
		}
		m.Set(name, i, 0, Wall)
		m.Set(name, i, last, Wall)
		m.Set(name, 0, i, Wall)
		m.Set(name, last, i, Wall)
	}
}

// octaveNoise layers several frequencies of normalized noise into [0,1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
