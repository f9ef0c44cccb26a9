package network

import (
	"sort"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/territory"
)

// Adjacency returns every pair of territories that share a bordering cell
// pair, deduplicated and sorted by key.
func Adjacency(territories territory.Map, topo chunk.Topology) []Edge {
	owners := territories.Owners()
	owner := func(c chunk.WorldCoord) (string, bool) {
		id, ok := owners[c]
		return id, ok
	}
	seen := make(map[string]bool)
	var out []Edge
	for _, t := range territories {
		for _, c := range t.Cells {
			for _, e := range CellEdges(topo, owner, c, t.Landmark) {
				if k := e.Key(); !seen[k] {
					seen[k] = true
					out = append(out, e)
				}
			}
		}
	}
	SortEdges(out)
	return out
}

// CellEdges lists edges from cell c, owned by id, to differently owned
// 4-neighbours. The result may repeat an edge.
func CellEdges(topo chunk.Topology, owner func(chunk.WorldCoord) (string, bool), c chunk.WorldCoord, id string) []Edge {
	var out []Edge
	for _, off := range chunk.Neighbors4 {
		v, ok := topo.Step(c, off[0], off[1])
		if !ok {
			continue
		}
		if other, ok := owner(v); ok && other != id {
			out = append(out, NewEdge(id, other))
		}
	}
	return out
}

// SortEdges orders edges by canonical key.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Key() < edges[j].Key()
	})
}
