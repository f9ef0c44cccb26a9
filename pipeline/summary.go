package pipeline

import (
	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/network"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/scheduler"
)

// Summary is the compact, persistable outcome of a finished build.
type Summary struct {
	Landmarks   []LandmarkSummary      `json:"landmarks"`
	Territories []TerritorySummary     `json:"territories"`
	Edges       []network.WeightedEdge `json:"edges"`
}

// LandmarkSummary omits the plateau tiles.
type LandmarkSummary struct {
	ID     string           `json:"id"`
	Center chunk.WorldCoord `json:"center"`
	Height int              `json:"height"`
}

// TerritorySummary counts cells per chunk instead of listing them.
type TerritorySummary struct {
	Landmark string             `json:"landmark"`
	Cells    int                `json:"cells"`
	ByChunk  map[chunk.Name]int `json:"by_chunk"`
}

// Summarize condenses r and the edges weighed so far in st.
func (r *Result) Summarize(st *scheduler.State) Summary {
	s := Summary{Edges: st.WeightedEdges()}
	for _, lm := range r.Landmarks {
		s.Landmarks = append(s.Landmarks, LandmarkSummary{ID: lm.ID(), Center: lm.Center, Height: lm.Height})
	}
	for _, t := range r.Territories {
		ts := TerritorySummary{Landmark: t.Landmark, Cells: len(t.Cells), ByChunk: map[chunk.Name]int{}}
		for _, c := range t.Cells {
			ts.ByChunk[c.Chunk]++
		}
		s.Territories = append(s.Territories, ts)
	}
	return s
}
